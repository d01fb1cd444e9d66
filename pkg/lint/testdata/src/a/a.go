package a

type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// That mirrors the assertthat.That signature so the analyzer
// can be exercised without external imports.
func That(t testingT, value any, phrase string) {}

func demo(t testingT) {
	v := []int{1, 2}

	That(t, v, "has len == 2")
	That(t, v, "has capacity >= 2")
	That(t, v, "contains 2")
	That(t, v, "is empty")
	That(t, v[0], "== 1")

	That(t, v, "has frobnicate == 1") // want `unknown property "frobnicate"`
	That(t, v, "len gooder than 2")   // want `malformed phrase`
	That(t, v, "is frobnicated")      // want `unknown predicate "frobnicated"`

	That(t, 42, "has len == 1") // want `len is not defined for int`

	m := map[string]int{"a": 1}
	That(t, m, "has capacity == 1") // want `capacity is not defined for map\[string\]int`
	That(t, m, "has len == 1")

	That(t, 42, "contains 4") // want `contains is not defined for int`
	That(t, v, "is nil")
	That(t, 42, "is nil") // want `nil is not defined for int`

	var anything any = v
	That(t, anything, "has capacity == 2")
}
