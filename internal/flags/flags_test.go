package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"argmap/options"
)

func TestAliasesAreSymmetric(t *testing.T) {
	f := New(&options.Options{
		Alias: map[string]options.StringOrArray{"f": {"file", "F"}},
	})

	assert.ElementsMatch(t, []string{"file", "F"}, f.Aliases("f"))
	assert.ElementsMatch(t, []string{"f", "F"}, f.Aliases("file"))
	assert.ElementsMatch(t, []string{"f", "file"}, f.Aliases("F"))
	assert.Empty(t, f.Aliases("other"))
}

func TestAliasesAreTransitive(t *testing.T) {
	f := New(&options.Options{
		Alias: map[string]options.StringOrArray{
			"a": {"b"},
			"c": {"b"},
			"x": {"y"},
		},
	})

	assert.ElementsMatch(t, []string{"b", "c"}, f.Aliases("a"))
	assert.ElementsMatch(t, []string{"a", "b"}, f.Aliases("c"))
	assert.ElementsMatch(t, []string{"y"}, f.Aliases("x"))
}

func TestAliasWithoutMembersIsDefined(t *testing.T) {
	f := New(&options.Options{
		Alias: map[string]options.StringOrArray{"lonely": {}},
	})

	assert.Empty(t, f.Aliases("lonely"))
	assert.True(t, f.Defined("lonely", "--lonely"))
}

func TestStringPropagatesThroughAliases(t *testing.T) {
	f := New(&options.Options{
		String: options.StringOrArray{"name"},
		Alias:  map[string]options.StringOrArray{"n": {"name"}, "nm": {"n"}},
	})

	assert.True(t, f.IsString("name"))
	assert.True(t, f.IsString("n"))
	assert.True(t, f.IsString("nm"))
	assert.False(t, f.IsString("other"))
}

func TestBooleans(t *testing.T) {
	f := New(&options.Options{
		Boolean: options.Booleans("verbose", "", "debug", "verbose"),
		Alias:   map[string]options.StringOrArray{"v": {"verbose"}},
	})

	assert.Equal(t, []string{"verbose", "debug"}, f.Booleans())
	assert.True(t, f.IsBoolean("verbose"))
	assert.False(t, f.IsBoolean("v"), "boolean typing is not copied to aliases")
	assert.True(t, f.AliasIsBoolean("v"))
	assert.False(t, f.AllBools())
}

func TestTakesValue(t *testing.T) {
	f := New(&options.Options{
		Boolean: options.Booleans("verbose"),
		Alias:   map[string]options.StringOrArray{"v": {"verbose"}, "o": {"output"}},
	})

	assert.False(t, f.TakesValue("verbose"))
	assert.False(t, f.TakesValue("v"))
	assert.True(t, f.TakesValue("o"))
	assert.True(t, f.TakesValue("undeclared"))
}

func TestAllBooleans(t *testing.T) {
	f := New(&options.Options{Boolean: options.AllBooleans()})

	assert.True(t, f.AllBools())
	assert.Empty(t, f.Booleans())
	assert.True(t, f.Defined("anything", "--anything"))
	assert.False(t, f.Defined("anything", "--anything=1"))
	assert.False(t, f.Defined("a", "-a"))
}

func TestDefined(t *testing.T) {
	f := New(&options.Options{
		String:  options.StringOrArray{"s"},
		Boolean: options.Booleans("b"),
		Alias:   map[string]options.StringOrArray{"x": {"y"}},
	})

	assert.True(t, f.Defined("s", "--s"))
	assert.True(t, f.Defined("b", "-b"))
	assert.True(t, f.Defined("y", "--y=1"))
	assert.False(t, f.Defined("z", "--z"))
}

func TestAdmit(t *testing.T) {
	assert.True(t, New(&options.Options{}).Admit("--anything"))

	var seen []string

	f := New(&options.Options{
		Unknown: func(arg string) bool {
			seen = append(seen, arg)
			return arg != "--reject"
		},
	})

	assert.True(t, f.HasUnknown())
	assert.True(t, f.Admit("--keep"))
	assert.False(t, f.Admit("--reject"))
	assert.Equal(t, []string{"--keep", "--reject"}, seen)
}
