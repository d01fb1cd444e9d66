package phrase

import "fmt"

// ParseError reports a phrase that does not match any grammar
// rule. It carries the byte offset of the offending token so
// static tooling can point at the exact position.
type ParseError struct {
	// Phrase is the full phrase text being parsed.
	Phrase string

	// Offset is the byte offset of the offending token within
	// the phrase.
	Offset int

	// Message describes what was expected.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"malformed phrase %q: %s (offset %d)",
		e.Phrase, e.Message, e.Offset,
	)
}
