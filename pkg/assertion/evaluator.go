package assertion

// Property resolves a named derived value of the checked value,
// such as its length or capacity. It returns an error when the
// property is not defined for the value's type.
type Property func(value any) (int, error)

// Predicate evaluates a named boolean check against a value,
// such as "empty". It returns an error when the predicate is
// not defined for the value's type.
type Predicate func(value any) (bool, error)
