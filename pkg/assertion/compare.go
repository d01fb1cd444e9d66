package assertion

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"

	"digital.vasic.assertthat/pkg/phrase"
)

// compare applies a comparison operator between the actual and
// expected values. Ordered operators require both sides to be
// numeric, or both to be strings; anything else is an error.
func compare(
	actual any,
	op phrase.Operator,
	expected any,
) (bool, error) {
	switch op {
	case phrase.OpEquals:
		return equals(actual, expected), nil
	case phrase.OpNotEquals:
		return !equals(actual, expected), nil
	}

	actualNum, aOk := toFloat64(actual)
	expectedNum, eOk := toFloat64(expected)
	if aOk && eOk {
		return compareOrdered(actualNum, op, expectedNum), nil
	}

	actualStr, aOk := actual.(string)
	expectedStr, eOk := expected.(string)
	if aOk && eOk {
		return compareOrdered(actualStr, op, expectedStr), nil
	}

	return false, fmt.Errorf(
		"cannot order %v (%T) against %v (%T)",
		actual, actual, expected, expected,
	)
}

// compareOrdered applies an ordered operator to two numbers or
// two strings.
func compareOrdered[T cmp.Ordered](
	a T,
	op phrase.Operator,
	b T,
) bool {
	switch op {
	case phrase.OpLessThan:
		return a < b
	case phrase.OpLessOrEqual:
		return a <= b
	case phrase.OpGreaterThan:
		return a > b
	case phrase.OpGreaterOrEqual:
		return a >= b
	default:
		return false
	}
}

// equals reports whether two values are equal, coercing across
// numeric kinds and falling back to string forms so that a
// phrase literal like 2 matches an int8, int64, or float64
// value.
func equals(actual, expected any) bool {
	if reflect.DeepEqual(actual, expected) {
		return true
	}

	actualNum, aOk := toFloat64(actual)
	expectedNum, eOk := toFloat64(expected)
	if aOk && eOk {
		return actualNum == expectedNum
	}

	return fmt.Sprintf("%v", actual) ==
		fmt.Sprintf("%v", expected)
}

// contains reports whether the container value holds the
// expected value: substring for strings, element equality for
// slices and arrays, key membership for maps. Other types are
// an error.
func contains(value, expected any) (bool, error) {
	if s, ok := value.(string); ok {
		return strings.Contains(
			s, fmt.Sprintf("%v", expected),
		), nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return strings.Contains(
			rv.String(), fmt.Sprintf("%v", expected),
		), nil
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if equals(rv.Index(i).Interface(), expected) {
				return true, nil
			}
		}
		return false, nil
	case reflect.Map:
		for _, key := range rv.MapKeys() {
			if equals(key.Interface(), expected) {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf(
			"contains is not defined for %T", value,
		)
	}
}

// toFloat64 converts any numeric value to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

