package keypath

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argmap/value"
)

func never(string) bool { return false }

func get(t *testing.T, root *value.Map, key string) value.Value {
	t.Helper()

	v, ok := Get(root, Split(key))
	require.True(t, ok, "missing %s in %s", key, spew.Sdump(root.Interface()))

	return v
}

func TestSetCreatesNestedMaps(t *testing.T) {
	root := value.NewMap()

	require.True(t, Set(root, Split("a.b.c"), value.Number(1), never))
	require.True(t, Set(root, Split("a.b.d"), value.String("x"), never))

	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 1.0, "d": "x"},
		},
	}, root.Interface())
}

func TestSetTerminalRules(t *testing.T) {
	tests := []struct {
		name     string
		writes   []value.Value
		forced   bool
		expected value.Value
	}{
		{
			name:     "first write",
			writes:   []value.Value{value.String("a")},
			expected: value.String("a"),
		},
		{
			name:     "second write makes a list",
			writes:   []value.Value{value.String("a"), value.Number(2)},
			expected: value.List(value.String("a"), value.Number(2)),
		},
		{
			name:     "third write appends",
			writes:   []value.Value{value.String("a"), value.String("b"), value.String("c")},
			expected: value.Strings("a", "b", "c"),
		},
		{
			name:     "bool is overwritten",
			writes:   []value.Value{value.Bool(true), value.String("x")},
			expected: value.String("x"),
		},
		{
			name:     "list holding a bool keeps appending",
			writes:   []value.Value{value.String("x"), value.Bool(false), value.String("y")},
			expected: value.List(value.String("x"), value.Bool(false), value.String("y")),
		},
		{
			name:     "null accumulates",
			writes:   []value.Value{value.Null(), value.Bool(true)},
			expected: value.List(value.Null(), value.Bool(true)),
		},
		{
			name:     "declared boolean always overwrites",
			writes:   []value.Value{value.Null(), value.Bool(true)},
			forced:   true,
			expected: value.Bool(true),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := value.NewMap()
			overwrite := func(last string) bool { return tt.forced && last == "k" }

			for _, w := range tt.writes {
				require.True(t, Set(root, Split("k"), w, overwrite))
			}

			got := get(t, root, "k")
			assert.True(t, tt.expected.Equal(got), "got %#v", got)
		})
	}
}

func TestSetGuardedSegments(t *testing.T) {
	for _, key := range []string{"__proto__", "constructor", "a.__proto__.b", "a.constructor", "__proto__.x"} {
		t.Run(key, func(t *testing.T) {
			root := value.NewMap()

			assert.False(t, Set(root, Split(key), value.String("polluted"), never))
			assert.Equal(t, 0, root.Len(), "no intermediate containers may be created")
		})
	}
}

func TestSetThroughScalarIsDropped(t *testing.T) {
	root := value.NewMap()
	require.True(t, Set(root, Split("a"), value.Number(1), never))

	assert.False(t, Set(root, Split("a.b"), value.Number(2), never))
	assert.Equal(t, value.Number(1), get(t, root, "a"))
}

func TestSetReplacesPlaceholders(t *testing.T) {
	root := value.NewMap()
	root.Set("m", value.MapOf(nil))
	root.Set("l", value.ListOf(nil))

	require.True(t, Set(root, Split("m.x"), value.Number(1), never))
	require.True(t, Set(root, Split("l.0"), value.String("first"), never))

	assert.Equal(t, map[string]any{
		"m": map[string]any{"x": 1.0},
		"l": []any{"first"},
	}, root.Interface())
}

func TestSetThroughLists(t *testing.T) {
	root := value.NewMap()
	require.True(t, Set(root, Split("items"), value.MapOf(value.NewMap()), never))
	require.True(t, Set(root, Split("items"), value.MapOf(value.NewMap()), never))

	require.True(t, Set(root, Split("items.1.name"), value.String("b"), never))
	require.True(t, Set(root, Split("items.2"), value.String("appended"), never))

	assert.False(t, Set(root, Split("items.9"), value.String("hole"), never))
	assert.False(t, Set(root, Split("items.01"), value.String("padded"), never))
	assert.False(t, Set(root, Split("items.x"), value.String("named"), never))

	assert.Equal(t, []any{
		map[string]any{},
		map[string]any{"name": "b"},
		"appended",
	}, root.Interface()["items"])
}

func TestHas(t *testing.T) {
	root := value.NewMap()
	Set(root, Split("a.b"), value.Null(), never)
	Set(root, Split("s"), value.String("x"), never)
	Set(root, Split("l"), value.Strings("p", "q"), never)

	tests := []struct {
		key      string
		expected bool
	}{
		{"a", true},
		{"a.b", true},
		{"a.c", false},
		{"s", true},
		{"s.length", false},
		{"l.1", true},
		{"l.2", false},
		{"missing.x", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, Has(root, Split(tt.key)))
		})
	}
}

func TestIsGuarded(t *testing.T) {
	assert.True(t, IsGuarded("__proto__"))
	assert.True(t, IsGuarded("constructor"))
	assert.False(t, IsGuarded("prototype"))
	assert.False(t, IsGuarded("Constructor"))
}
