// Package lint statically validates assertion phrases so a
// malformed phrase is caught before any test runs. It scans Go
// source for assertion calls whose phrase argument is a string
// literal and checks the literal against the phrase grammar and
// the set of registered property and predicate names. The same
// checks are exposed as a go/analysis Analyzer that additionally
// rejects phrases whose property is not defined for the static
// type of the checked value.
package lint

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"

	"digital.vasic.assertthat/pkg/assertion"
	"digital.vasic.assertthat/pkg/phrase"
)

// Diagnostic reports one invalid assertion phrase at a source
// position.
type Diagnostic struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Phrase  string `json:"phrase,omitempty"`
	Message string `json:"message"`
}

// String formats the diagnostic in the usual file:line:col form.
func (d Diagnostic) String() string {
	return fmt.Sprintf(
		"%s:%d:%d: %s", d.File, d.Line, d.Column, d.Message,
	)
}

// Checker validates assertion phrases in parsed source files.
type Checker struct {
	cfg        Config
	properties map[string]bool
	predicates map[string]bool
}

// NewChecker creates a Checker for the given config. The known
// property and predicate names are the engine builtins plus the
// config's extra names.
func NewChecker(cfg Config) *Checker {
	if len(cfg.Targets) == 0 {
		cfg.Targets = DefaultConfig().Targets
	}

	c := &Checker{
		cfg:        cfg,
		properties: make(map[string]bool),
		predicates: make(map[string]bool),
	}

	engine := assertion.NewEngine()
	for _, name := range engine.Properties() {
		c.properties[name] = true
	}
	for _, name := range engine.Predicates() {
		c.predicates[name] = true
	}
	for _, name := range cfg.ExtraProperties {
		c.properties[name] = true
	}
	for _, name := range cfg.ExtraPredicates {
		c.predicates[name] = true
	}

	return c
}

// CheckFile scans one parsed file and returns a diagnostic for
// every assertion call whose phrase is malformed or names an
// unregistered property or predicate.
func (c *Checker) CheckFile(
	fset *token.FileSet,
	file *ast.File,
) []Diagnostic {
	var diags []Diagnostic

	ast.Inspect(file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}

		target, ok := c.cfg.target(calleeName(call))
		if !ok || len(call.Args) <= target.PhraseArg {
			return true
		}

		arg := call.Args[target.PhraseArg]
		raw, ok := stringLiteral(arg)
		if !ok {
			if c.cfg.CheckDynamic {
				diags = append(diags, c.diagnostic(
					fset, arg.Pos(), "",
					"phrase is not a string literal and cannot be checked statically",
				))
			}
			return true
		}

		if msg := c.checkPhrase(raw); msg != "" {
			diags = append(diags, c.diagnostic(
				fset, arg.Pos(), raw, msg,
			))
		}

		return true
	})

	return diags
}

// checkPhrase validates a single phrase string. It returns an
// empty string when the phrase is valid.
func (c *Checker) checkPhrase(raw string) string {
	p, err := phrase.Parse(raw)
	if err != nil {
		return err.Error()
	}

	switch p.Kind {
	case phrase.KindProperty:
		if !c.properties[p.Property] {
			return fmt.Sprintf(
				"unknown property %q", p.Property,
			)
		}
	case phrase.KindPredicate:
		if !c.predicates[p.Property] {
			return fmt.Sprintf(
				"unknown predicate %q", p.Property,
			)
		}
	}

	return ""
}

// diagnostic builds a Diagnostic at the given position.
func (c *Checker) diagnostic(
	fset *token.FileSet,
	pos token.Pos,
	raw string,
	msg string,
) Diagnostic {
	position := fset.Position(pos)
	return Diagnostic{
		File:    position.Filename,
		Line:    position.Line,
		Column:  position.Column,
		Phrase:  raw,
		Message: msg,
	}
}

// calleeName returns the bare function name of a call.
func calleeName(call *ast.CallExpr) string {
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		return fun.Sel.Name
	default:
		return ""
	}
}

// stringLiteral extracts the value of a string literal
// expression.
func stringLiteral(expr ast.Expr) (string, bool) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}

	raw, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return raw, true
}
