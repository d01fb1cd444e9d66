package assertion

import (
	"fmt"
	"reflect"
)

// lengthOf resolves the built-in "len" property. It is defined
// for strings, slices, arrays, maps, and channels.
func lengthOf(value any) (int, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array,
		reflect.Map, reflect.Chan:
		return rv.Len(), nil
	default:
		return 0, fmt.Errorf(
			"len is not defined for %T", value,
		)
	}
}

// capacityOf resolves the built-in "capacity" property. It is
// defined only for slices, arrays, and channels; any other type
// is an error, never a silent false result.
func capacityOf(value any) (int, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Chan:
		return rv.Cap(), nil
	default:
		return 0, fmt.Errorf(
			"capacity is not defined for %T", value,
		)
	}
}

// isEmpty is the built-in "empty" predicate. A value is empty
// when its length is zero.
func isEmpty(value any) (bool, error) {
	n, err := lengthOf(value)
	if err != nil {
		return false, fmt.Errorf(
			"empty is not defined for %T", value,
		)
	}
	return n == 0, nil
}

// isNil is the built-in "nil" predicate. It is defined only for
// nilable kinds.
func isNil(value any) (bool, error) {
	if value == nil {
		return true, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil(), nil
	default:
		return false, fmt.Errorf(
			"nil is not defined for %T", value,
		)
	}
}
