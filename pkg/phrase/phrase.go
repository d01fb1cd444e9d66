// Package phrase defines the assertion phrase grammar and its
// parser. A phrase is the natural-language half of an assertion
// call (e.g. "has len == 2", "contains 2") and parses into a
// closed set of shapes that the evaluation engine understands.
package phrase

// Kind identifies the shape of a parsed phrase.
type Kind int

const (
	// KindCompare is a bare comparison of the value itself,
	// e.g. "== 2".
	KindCompare Kind = iota

	// KindProperty compares a named derived value, e.g.
	// "has len == 2".
	KindProperty

	// KindContains is a membership check, e.g. "contains 2"
	// or "contains 2, 3".
	KindContains

	// KindPredicate is a named boolean check, e.g. "is empty".
	KindPredicate
)

// String returns the keyword introducing the phrase shape.
func (k Kind) String() string {
	switch k {
	case KindCompare:
		return "compare"
	case KindProperty:
		return "has"
	case KindContains:
		return "contains"
	case KindPredicate:
		return "is"
	default:
		return "unknown"
	}
}

// Operator is a comparison operator within a phrase.
type Operator int

const (
	OpEquals Operator = iota
	OpNotEquals
	OpLessThan
	OpLessOrEqual
	OpGreaterThan
	OpGreaterOrEqual
)

// String returns the source form of the operator.
func (op Operator) String() string {
	switch op {
	case OpEquals:
		return "=="
	case OpNotEquals:
		return "!="
	case OpLessThan:
		return "<"
	case OpLessOrEqual:
		return "<="
	case OpGreaterThan:
		return ">"
	case OpGreaterOrEqual:
		return ">="
	default:
		return "unknown"
	}
}

// lookupOperator maps an operator token to its Operator. The
// second return value is false for unrecognized tokens.
func lookupOperator(s string) (Operator, bool) {
	switch s {
	case "==":
		return OpEquals, true
	case "!=":
		return OpNotEquals, true
	case "<":
		return OpLessThan, true
	case "<=":
		return OpLessOrEqual, true
	case ">":
		return OpGreaterThan, true
	case ">=":
		return OpGreaterOrEqual, true
	default:
		return 0, false
	}
}

// Phrase is a parsed assertion phrase.
type Phrase struct {
	// Kind is the grammar shape the phrase matched.
	Kind Kind `json:"kind"`

	// Property is the property name for KindProperty phrases
	// (e.g. "len") or the predicate name for KindPredicate
	// phrases (e.g. "empty").
	Property string `json:"property,omitempty"`

	// Op is the comparison operator for KindCompare and
	// KindProperty phrases.
	Op Operator `json:"op"`

	// Value is the right-hand literal for KindCompare and
	// KindProperty phrases.
	Value any `json:"value,omitempty"`

	// Values holds the literals of a KindContains phrase. A
	// containment check passes only when every value is found.
	Values []any `json:"values,omitempty"`

	// Raw is the phrase text as written at the call site.
	Raw string `json:"raw"`
}
