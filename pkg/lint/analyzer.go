package lint

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"digital.vasic.assertthat/pkg/phrase"
)

// Analyzer checks assertion phrases under go vet. On top of the
// grammar and name checks in Checker, it uses type information
// to reject phrases whose property is not defined for the
// static type of the checked value, e.g. "has capacity == 2"
// on a map.
var Analyzer = &analysis.Analyzer{
	Name: "assertphrase",
	Doc:  "check assertion phrases for grammar errors and property/type mismatches",
	Run:  runAnalyzer,
}

func runAnalyzer(pass *analysis.Pass) (any, error) {
	c := NewChecker(DefaultConfig())

	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			target, ok := c.cfg.target(calleeName(call))
			if !ok || len(call.Args) <= target.PhraseArg ||
				len(call.Args) <= target.ValueArg {
				return true
			}

			arg := call.Args[target.PhraseArg]
			raw, ok := stringLiteral(arg)
			if !ok {
				return true
			}

			if msg := c.checkPhrase(raw); msg != "" {
				pass.Reportf(arg.Pos(), "%s", msg)
				return true
			}

			p, err := phrase.Parse(raw)
			if err != nil {
				return true
			}

			valueType := pass.TypesInfo.TypeOf(
				call.Args[target.ValueArg],
			)
			if msg := checkApplicability(p, valueType); msg != "" {
				pass.Reportf(arg.Pos(), "%s", msg)
			}

			return true
		})
	}

	return nil, nil
}

// checkApplicability rejects phrases whose builtin property,
// predicate, or containment check is not defined for the static
// type of the value. Interface-typed values are skipped since
// their dynamic type is unknown.
func checkApplicability(p phrase.Phrase, t types.Type) string {
	if t == nil {
		return ""
	}

	u := t.Underlying()
	if _, ok := u.(*types.Interface); ok {
		return ""
	}

	switch p.Kind {
	case phrase.KindProperty:
		switch p.Property {
		case "len":
			if !hasLen(u) {
				return fmt.Sprintf(
					"len is not defined for %s", t,
				)
			}
		case "capacity":
			if !hasCap(u) {
				return fmt.Sprintf(
					"capacity is not defined for %s", t,
				)
			}
		}

	case phrase.KindPredicate:
		switch p.Property {
		case "empty":
			if !hasLen(u) {
				return fmt.Sprintf(
					"empty is not defined for %s", t,
				)
			}
		case "nil":
			if !isNilable(u) {
				return fmt.Sprintf(
					"nil is not defined for %s", t,
				)
			}
		}

	case phrase.KindContains:
		if !isContainer(u) {
			return fmt.Sprintf(
				"contains is not defined for %s", t,
			)
		}
	}

	return ""
}

// hasLen reports whether len is defined for the underlying
// type.
func hasLen(u types.Type) bool {
	switch u := u.(type) {
	case *types.Slice, *types.Array, *types.Map, *types.Chan:
		return true
	case *types.Basic:
		return u.Info()&types.IsString != 0
	default:
		return false
	}
}

// hasCap reports whether cap is defined for the underlying
// type.
func hasCap(u types.Type) bool {
	switch u.(type) {
	case *types.Slice, *types.Array, *types.Chan:
		return true
	default:
		return false
	}
}

// isContainer reports whether a containment check is defined
// for the underlying type.
func isContainer(u types.Type) bool {
	switch u := u.(type) {
	case *types.Slice, *types.Array, *types.Map:
		return true
	case *types.Basic:
		return u.Info()&types.IsString != 0
	default:
		return false
	}
}

// isNilable reports whether the underlying type has a nil zero
// value.
func isNilable(u types.Type) bool {
	switch u.(type) {
	case *types.Pointer, *types.Slice, *types.Map,
		*types.Chan, *types.Signature, *types.Interface:
		return true
	default:
		return false
	}
}
