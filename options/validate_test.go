package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argmap/internal/diagnostic"
	"argmap/value"
)

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func TestValidateClean(t *testing.T) {
	opts := Options{
		String:  StringOrArray{"name"},
		Boolean: Booleans("verbose"),
		Alias:   map[string]StringOrArray{"v": {"verbose"}},
		Default: value.NewMap().Set("server.port", value.Number(80)),
	}

	res := opts.Validate()
	assert.False(t, res.HasErrors())
	assert.Empty(t, res.Warnings)
}

func TestValidateReportsProblems(t *testing.T) {
	opts := Options{
		String:  StringOrArray{"mode", ""},
		Boolean: Booleans("mode"),
		Alias:   map[string]StringOrArray{"x": {"x", "a.__proto__"}},
		Default: value.NewMap().Set("constructor", value.String("nope")),
	}

	res := opts.Validate()

	require.True(t, res.HasErrors())
	assert.Equal(t, []string{"empty_key"}, codes(res.Errors))
	assert.ElementsMatch(t,
		[]string{"string_and_boolean", "self_alias", "guarded_segment", "guarded_segment"},
		codes(res.Warnings))
	assert.Error(t, res.Error())
}
