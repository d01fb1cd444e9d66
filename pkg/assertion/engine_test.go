package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.assertthat/pkg/phrase"
)

func TestNewEngine_RegistersBuiltins(t *testing.T) {
	e := NewEngine()

	for _, name := range []string{"len", "capacity"} {
		assert.True(t, e.HasProperty(name),
			"missing built-in property: %s", name)
	}
	for _, name := range []string{"empty", "nil"} {
		assert.True(t, e.HasPredicate(name),
			"missing built-in predicate: %s", name)
	}
}

func TestDefaultEngine_RegisterProperty(t *testing.T) {
	e := NewEngine()

	err := e.RegisterProperty("depth", func(_ any) (int, error) {
		return 3, nil
	})

	require.NoError(t, err)
	assert.True(t, e.HasProperty("depth"))

	r, err := e.Evaluate(
		phrase.MustParse("has depth == 3"), struct{}{},
	)
	require.NoError(t, err)
	assert.True(t, r.Passed)
}

func TestDefaultEngine_RegisterProperty_Duplicate(t *testing.T) {
	e := NewEngine()

	err := e.RegisterProperty("len", func(_ any) (int, error) {
		return 0, nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestDefaultEngine_RegisterPredicate_Duplicate(t *testing.T) {
	e := NewEngine()

	err := e.RegisterPredicate("empty", func(_ any) (bool, error) {
		return false, nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestEvaluate_LenCompare(t *testing.T) {
	e := NewEngine()
	v := []int{1, 2}

	t.Run("passes on matching length", func(t *testing.T) {
		r, err := e.Evaluate(
			phrase.MustParse("has len == 2"), v,
		)

		require.NoError(t, err)
		assert.True(t, r.Passed)
		assert.Equal(t, 2, r.Actual)
	})

	t.Run("fails reporting actual length", func(t *testing.T) {
		r, err := e.Evaluate(
			phrase.MustParse("has len == 3"), v,
		)

		require.NoError(t, err)
		assert.False(t, r.Passed)
		assert.Equal(t, 2, r.Actual)
		assert.Contains(t, r.Message, "len = 2")
	})
}

func TestEvaluate_CapacityCompare(t *testing.T) {
	e := NewEngine()

	t.Run("passes on matching capacity", func(t *testing.T) {
		v := make([]int, 2, 2)
		v[0], v[1] = 1, 2

		r, err := e.Evaluate(
			phrase.MustParse("has capacity == 2"), v,
		)

		require.NoError(t, err)
		assert.True(t, r.Passed)
		assert.Equal(t, 2, r.Actual)
	})

	t.Run("errors on capacity-less type", func(t *testing.T) {
		m := map[string]int{"a": 1}

		_, err := e.Evaluate(
			phrase.MustParse("has capacity == 1"), m,
		)

		require.Error(t, err)
		assert.Contains(
			t, err.Error(), "capacity is not defined",
		)
	})
}

func TestEvaluate_UnknownProperty(t *testing.T) {
	e := NewEngine()

	_, err := e.Evaluate(
		phrase.MustParse("has frobnicate == 1"), []int{1},
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown property")
}

func TestEvaluate_Contains(t *testing.T) {
	e := NewEngine()
	v := []int{1, 2}

	t.Run("passes when element present", func(t *testing.T) {
		r, err := e.Evaluate(
			phrase.MustParse("contains 2"), v,
		)

		require.NoError(t, err)
		assert.True(t, r.Passed)
	})

	t.Run("fails reporting missing element", func(t *testing.T) {
		r, err := e.Evaluate(
			phrase.MustParse("contains 5"), v,
		)

		require.NoError(t, err)
		assert.False(t, r.Passed)
		assert.Contains(t, r.Message, "5 not found")
	})

	t.Run("requires every listed value", func(t *testing.T) {
		r, err := e.Evaluate(
			phrase.MustParse("contains 1, 5"), v,
		)

		require.NoError(t, err)
		assert.False(t, r.Passed)
		assert.Contains(t, r.Message, "5 not found")
		assert.NotContains(t, r.Message, "1,")
	})

	t.Run("substring match on strings", func(t *testing.T) {
		r, err := e.Evaluate(
			phrase.MustParse("contains 'orl'"), "world",
		)

		require.NoError(t, err)
		assert.True(t, r.Passed)
	})

	t.Run("key membership on maps", func(t *testing.T) {
		m := map[string]int{"a": 1, "b": 2}

		r, err := e.Evaluate(
			phrase.MustParse("contains 'b'"), m,
		)

		require.NoError(t, err)
		assert.True(t, r.Passed)
	})

	t.Run("errors on non-container", func(t *testing.T) {
		_, err := e.Evaluate(
			phrase.MustParse("contains 1"), 42,
		)

		require.Error(t, err)
		assert.Contains(
			t, err.Error(), "contains is not defined",
		)
	})
}

func TestEvaluate_DirectCompare(t *testing.T) {
	e := NewEngine()

	t.Run("passes on equal value", func(t *testing.T) {
		r, err := e.Evaluate(phrase.MustParse("== 2"), 2)

		require.NoError(t, err)
		assert.True(t, r.Passed)
	})

	t.Run("fails with both values in message", func(t *testing.T) {
		r, err := e.Evaluate(phrase.MustParse("== 3"), 2)

		require.NoError(t, err)
		assert.False(t, r.Passed)
		assert.Contains(t, r.Message, "expected == 3")
		assert.Contains(t, r.Message, "got 2")
	})

	t.Run("errors ordering incomparable types", func(t *testing.T) {
		_, err := e.Evaluate(
			phrase.MustParse("< 3"), []int{1},
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot order")
	})
}

func TestEvaluate_Predicate(t *testing.T) {
	e := NewEngine()

	t.Run("empty passes on empty slice", func(t *testing.T) {
		r, err := e.Evaluate(
			phrase.MustParse("is empty"), []int{},
		)

		require.NoError(t, err)
		assert.True(t, r.Passed)
	})

	t.Run("empty fails on non-empty slice", func(t *testing.T) {
		r, err := e.Evaluate(
			phrase.MustParse("is empty"), []int{1},
		)

		require.NoError(t, err)
		assert.False(t, r.Passed)
		assert.Equal(t, "is not empty", r.Message)
	})

	t.Run("nil passes on nil slice", func(t *testing.T) {
		var v []int

		r, err := e.Evaluate(phrase.MustParse("is nil"), v)

		require.NoError(t, err)
		assert.True(t, r.Passed)
	})

	t.Run("unknown predicate errors", func(t *testing.T) {
		_, err := e.Evaluate(
			phrase.MustParse("is frobnicated"), []int{1},
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown predicate")
	})
}

func TestEvaluate_Idempotent(t *testing.T) {
	e := NewEngine()
	v := []int{1, 2}
	p := phrase.MustParse("has len == 2")

	first, err := e.Evaluate(p, v)
	require.NoError(t, err)

	second, err := e.Evaluate(p, v)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []int{1, 2}, v)
}
