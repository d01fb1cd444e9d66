// Package assertion provides the evaluation engine behind
// assertion phrases. It resolves named properties (len,
// capacity), runs comparisons and containment checks, and
// supports custom property and predicate registration.
package assertion

// Result captures the outcome of evaluating a single assertion
// phrase against a value.
type Result struct {
	// Phrase is the phrase text that was evaluated.
	Phrase string `json:"phrase"`

	// Expected is the right-hand value the phrase expected.
	Expected any `json:"expected,omitempty"`

	// Actual is the value that was observed. For property
	// phrases this is the resolved property value, not the
	// container itself.
	Actual any `json:"actual"`

	// Passed indicates whether the check succeeded.
	Passed bool `json:"passed"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`
}
