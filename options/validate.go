package options

import (
	"slices"

	"argmap/internal/diagnostic"
	"argmap/internal/keypath"
)

// Validate reports declarations that are contradictory or will be silently
// ignored during parsing. It never changes how tokens are parsed.
func (o *Options) Validate() diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	declared := map[string][]string{
		"string":  o.String,
		"boolean": o.Boolean.Keys,
	}

	for _, option := range []string{"string", "boolean"} {
		for _, key := range declared[option] {
			validateKey(&res, option, key)
		}
	}

	for _, key := range o.Boolean.Keys.Keys() {
		if slices.Contains(o.String, key) {
			res.AddWarning("string_and_boolean",
				"key is declared both string and boolean; boolean wins for lookahead", "boolean", key)
		}
	}

	for _, key := range sortedKeys(o.Alias) {
		validateKey(&res, "alias", key)

		for _, other := range o.Alias[key] {
			validateKey(&res, "alias", other)

			if other == key {
				res.AddWarning("self_alias", "alias points at its own key", "alias", key)
			}
		}
	}

	for _, key := range o.Default.Keys() {
		validateKey(&res, "default", key)
	}

	return res
}

func validateKey(res *diagnostic.Diagnostics, option, key string) {
	if key == "" {
		res.AddError("empty_key", "key name is empty", option, "")
		return
	}

	for _, segment := range keypath.Split(key) {
		if keypath.IsGuarded(segment) {
			res.AddWarning("guarded_segment",
				"key path contains "+segment+" and will never be assigned", option, key)

			return
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
