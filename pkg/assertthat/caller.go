package assertthat

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"runtime"
	"sync"
)

var (
	callerMu    sync.Mutex
	callerFset  = token.NewFileSet()
	callerFiles = make(map[string]*ast.File)
)

// callerValueExpr recovers the source text of the value
// argument of the That call `skip` frames above the caller. It
// returns "value" when the source cannot be read or parsed, so
// failure messages degrade instead of breaking.
func callerValueExpr(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "value"
	}

	f := parsedCallerFile(file)
	if f == nil {
		return "value"
	}

	expr := "value"
	ast.Inspect(f, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if callerFset.Position(call.Pos()).Line != line {
			return true
		}
		if calleeName(call) != "That" || len(call.Args) < 3 {
			return true
		}

		var buf bytes.Buffer
		if err := printer.Fprint(
			&buf, callerFset, call.Args[1],
		); err != nil {
			return true
		}
		expr = buf.String()
		return false
	})

	return expr
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

// parsedCallerFile parses and caches the caller's source file.
// Parse failures are cached as nil so a bad file is only read
// once.
func parsedCallerFile(path string) *ast.File {
	callerMu.Lock()
	defer callerMu.Unlock()

	if f, cached := callerFiles[path]; cached {
		return f
	}

	f, err := parser.ParseFile(callerFset, path, nil, 0)
	if err != nil {
		f = nil
	}
	callerFiles[path] = f
	return f
}
