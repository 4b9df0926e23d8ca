package builtin_test

import (
	"testing"

	"bennypowers.dev/sasseval/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairs(kv ...value.Value) *value.Map {
	m := value.NewMap()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Insert(kv[i], kv[i+1])
	}
	return m
}

func TestMapFunctions(t *testing.T) {
	m := pairs(str("a"), num(1), str("b"), num(2))

	t.Run("get", func(t *testing.T) {
		assert.Equal(t, num(2), mustCall(t, "map-get", m, str("b")))
		assert.Equal(t, num(1), mustCall(t, "map-get", m, quoted("a")), "quotes do not affect key equality")
		assert.Equal(t, value.Nil, mustCall(t, "map-get", m, str("z")))
	})

	t.Run("merge", func(t *testing.T) {
		got := mustCall(t, "map-merge", m, pairs(str("a"), num(10), str("c"), num(3)))
		assert.Equal(t, "(a: 10, b: 2, c: 3)", value.Inspect(got))
		assert.Equal(t, "(a: 1, b: 2)", value.Inspect(m), "inputs are not modified")
	})

	t.Run("merge empty list", func(t *testing.T) {
		got := mustCall(t, "map-merge", list(value.Space), m)
		assert.True(t, value.Equal(m, got))
	})

	t.Run("remove", func(t *testing.T) {
		got := mustCall(t, "map-remove", m, str("a"), str("z"))
		assert.Equal(t, "(b: 2)", value.Inspect(got))
		assert.Equal(t, 2, m.Len())
	})

	t.Run("keys and values", func(t *testing.T) {
		assert.Equal(t, "a, b", css(t, mustCall(t, "map-keys", m)))
		assert.Equal(t, "1, 2", css(t, mustCall(t, "map-values", m)))
	})

	t.Run("has key", func(t *testing.T) {
		assert.Equal(t, value.True, mustCall(t, "map-has-key", m, str("a")))
		assert.Equal(t, value.False, mustCall(t, "map-has-key", m, num(1)))
	})

	t.Run("not a map", func(t *testing.T) {
		_, err := call(t, "map-get", num(1), str("a"))
		require.Error(t, err)
		assert.Equal(t, "$map: 1 is not a map.", err.Error())

		_, err = call(t, "map-keys", list(value.Space, num(1), num(2)))
		assert.EqualError(t, err, "$map: 1 2 is not a map.")
	})
}
