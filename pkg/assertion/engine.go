package assertion

import (
	"fmt"
	"strings"
	"sync"

	"digital.vasic.assertthat/pkg/phrase"
)

// Engine defines the interface for phrase evaluation engines.
type Engine interface {
	// Evaluate checks a parsed phrase against the given value.
	// A non-nil error means the phrase cannot be evaluated
	// against the value at all (unknown property, capacity of
	// a map, ordering non-numeric values); it is never a plain
	// failed Result.
	Evaluate(p phrase.Phrase, value any) (Result, error)

	// RegisterProperty adds a custom property resolver.
	// Returns an error if the name is already registered.
	RegisterProperty(name string, resolver Property) error

	// RegisterPredicate adds a custom predicate. Returns an
	// error if the name is already registered.
	RegisterPredicate(name string, pred Predicate) error
}

// DefaultEngine is the standard Engine implementation. It is
// safe for concurrent use.
type DefaultEngine struct {
	mu         sync.RWMutex
	properties map[string]Property
	predicates map[string]Predicate
}

// NewEngine creates a DefaultEngine with the built-in
// properties (len, capacity) and predicates (empty, nil)
// pre-registered.
func NewEngine() *DefaultEngine {
	e := &DefaultEngine{
		properties: make(map[string]Property),
		predicates: make(map[string]Predicate),
	}
	e.registerDefaults()
	return e
}

// registerDefaults registers the built-in properties and
// predicates.
func (e *DefaultEngine) registerDefaults() {
	e.properties["len"] = lengthOf
	e.properties["capacity"] = capacityOf
	e.predicates["empty"] = isEmpty
	e.predicates["nil"] = isNil
}

// RegisterProperty adds a custom property resolver. Returns an
// error if the name is already registered.
func (e *DefaultEngine) RegisterProperty(
	name string,
	resolver Property,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.properties[name]; exists {
		return fmt.Errorf(
			"property already registered: %s", name,
		)
	}

	e.properties[name] = resolver
	return nil
}

// RegisterPredicate adds a custom predicate. Returns an error
// if the name is already registered.
func (e *DefaultEngine) RegisterPredicate(
	name string,
	pred Predicate,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.predicates[name]; exists {
		return fmt.Errorf(
			"predicate already registered: %s", name,
		)
	}

	e.predicates[name] = pred
	return nil
}

// HasProperty returns true if the given property name has a
// registered resolver.
func (e *DefaultEngine) HasProperty(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.properties[name]
	return exists
}

// HasPredicate returns true if the given predicate name is
// registered.
func (e *DefaultEngine) HasPredicate(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.predicates[name]
	return exists
}

// Properties returns the names of all registered properties.
func (e *DefaultEngine) Properties() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.properties))
	for name := range e.properties {
		names = append(names, name)
	}
	return names
}

// Predicates returns the names of all registered predicates.
func (e *DefaultEngine) Predicates() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.predicates))
	for name := range e.predicates {
		names = append(names, name)
	}
	return names
}

// Evaluate checks a parsed phrase against the provided value.
func (e *DefaultEngine) Evaluate(
	p phrase.Phrase,
	value any,
) (Result, error) {
	switch p.Kind {
	case phrase.KindCompare:
		return e.evaluateCompare(p, value)
	case phrase.KindProperty:
		return e.evaluateProperty(p, value)
	case phrase.KindContains:
		return e.evaluateContains(p, value)
	case phrase.KindPredicate:
		return e.evaluatePredicate(p, value)
	default:
		return Result{}, fmt.Errorf(
			"unsupported phrase kind: %s", p.Kind,
		)
	}
}

// evaluateCompare checks a bare "<op> <value>" phrase against
// the value itself.
func (e *DefaultEngine) evaluateCompare(
	p phrase.Phrase,
	value any,
) (Result, error) {
	passed, err := compare(value, p.Op, p.Value)
	if err != nil {
		return Result{}, err
	}

	msg := fmt.Sprintf("%v %s %v", value, p.Op, p.Value)
	if !passed {
		msg = fmt.Sprintf(
			"expected %s %v, got %v", p.Op, p.Value, value,
		)
	}

	return Result{
		Phrase:   p.Raw,
		Expected: p.Value,
		Actual:   value,
		Passed:   passed,
		Message:  msg,
	}, nil
}

// evaluateProperty resolves the named property of the value and
// compares it against the phrase's right-hand side.
func (e *DefaultEngine) evaluateProperty(
	p phrase.Phrase,
	value any,
) (Result, error) {
	e.mu.RLock()
	resolver, exists := e.properties[p.Property]
	e.mu.RUnlock()

	if !exists {
		return Result{}, fmt.Errorf(
			"unknown property: %s", p.Property,
		)
	}

	actual, err := resolver(value)
	if err != nil {
		return Result{}, err
	}

	passed, err := compare(actual, p.Op, p.Value)
	if err != nil {
		return Result{}, err
	}

	msg := fmt.Sprintf(
		"%s %d %s %v", p.Property, actual, p.Op, p.Value,
	)
	if !passed {
		msg = fmt.Sprintf(
			"expected %s %s %v, but %s = %d",
			p.Property, p.Op, p.Value, p.Property, actual,
		)
	}

	return Result{
		Phrase:   p.Raw,
		Expected: p.Value,
		Actual:   actual,
		Passed:   passed,
		Message:  msg,
	}, nil
}

// evaluateContains checks that the value contains every literal
// listed in the phrase.
func (e *DefaultEngine) evaluateContains(
	p phrase.Phrase,
	value any,
) (Result, error) {
	var missing []string
	for _, want := range p.Values {
		found, err := contains(value, want)
		if err != nil {
			return Result{}, err
		}
		if !found {
			missing = append(
				missing, fmt.Sprintf("%v", want),
			)
		}
	}

	passed := len(missing) == 0
	msg := fmt.Sprintf("contains %s", joinValues(p.Values))
	if !passed {
		msg = fmt.Sprintf(
			"%s not found", strings.Join(missing, ", "),
		)
	}

	return Result{
		Phrase:   p.Raw,
		Expected: p.Values,
		Actual:   value,
		Passed:   passed,
		Message:  msg,
	}, nil
}

// evaluatePredicate runs the named predicate against the value.
func (e *DefaultEngine) evaluatePredicate(
	p phrase.Phrase,
	value any,
) (Result, error) {
	e.mu.RLock()
	pred, exists := e.predicates[p.Property]
	e.mu.RUnlock()

	if !exists {
		return Result{}, fmt.Errorf(
			"unknown predicate: %s", p.Property,
		)
	}

	passed, err := pred(value)
	if err != nil {
		return Result{}, err
	}

	msg := fmt.Sprintf("is %s", p.Property)
	if !passed {
		msg = fmt.Sprintf("is not %s", p.Property)
	}

	return Result{
		Phrase:  p.Raw,
		Actual:  value,
		Passed:  passed,
		Message: msg,
	}, nil
}

// joinValues formats a literal list for messages.
func joinValues(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	return strings.Join(parts, ", ")
}
