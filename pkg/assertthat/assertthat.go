// Package assertthat is the test-facing surface of the module.
// It lets test authors write assertions as natural-language
// phrases:
//
//	v := []int{1, 2}
//	assertthat.That(t, v, "has len == 2")
//	assertthat.That(t, v, "contains 2")
//	assertthat.That(t, v[0], "== 1")
//
// A failing check aborts the test via Fatalf with a message
// that includes the source expression text, the phrase, and
// the observed value. A malformed phrase is reported as a
// distinct "invalid assertion phrase" failure and can also be
// caught before tests run by the assertphrase analyzer in
// pkg/lint.
package assertthat

import (
	"digital.vasic.assertthat/pkg/assertion"
	"digital.vasic.assertthat/pkg/phrase"
)

// TestingT is the subset of testing.TB that That needs.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// defaultEngine evaluates all phrases passed to That and Check.
var defaultEngine = assertion.NewEngine()

// Engine returns the engine behind That and Check so callers
// can register custom properties and predicates.
func Engine() *assertion.DefaultEngine {
	return defaultEngine
}

// That parses the phrase, evaluates it against value, and fails
// the test on mismatch. The failure message has the form
//
//	assertion failed: <expr> <phrase> (actual: <value>)
//
// where <expr> is the source text of the value argument at the
// call site, recovered on a best-effort basis.
func That(t TestingT, value any, rawPhrase string) {
	t.Helper()

	p, err := phrase.Parse(rawPhrase)
	if err != nil {
		t.Fatalf("invalid assertion phrase: %v", err)
		return
	}

	r, err := defaultEngine.Evaluate(p, value)
	if err != nil {
		t.Fatalf(
			"invalid assertion phrase %q: %v", rawPhrase, err,
		)
		return
	}

	if !r.Passed {
		t.Fatalf(
			"assertion failed: %s %s (actual: %v)",
			callerValueExpr(1), rawPhrase, r.Actual,
		)
	}
}

// Check is the programmatic form of That. It returns the
// evaluation Result, or an error when the phrase is malformed
// or cannot be evaluated against the value.
func Check(value any, rawPhrase string) (assertion.Result, error) {
	p, err := phrase.Parse(rawPhrase)
	if err != nil {
		return assertion.Result{}, err
	}
	return defaultEngine.Evaluate(p, value)
}
