package parser

import (
	"argmap/internal/keypath"
	"argmap/value"
)

// Result is the record produced by Parse.
type Result struct {
	record *value.Map
}

// Map returns the underlying record, including the reserved "_" and "--"
// keys. Changes to it are visible through the Result.
func (r *Result) Map() *value.Map {
	return r.record
}

// Get returns the top-level entry for key. Dots are not interpreted.
func (r *Result) Get(key string) (value.Value, bool) {
	return r.record.Get(key)
}

// Lookup resolves a dotted key such as "server.port".
func (r *Result) Lookup(key string) (value.Value, bool) {
	return keypath.Get(r.record, keypath.Split(key))
}

// Positional returns the positional arguments in encounter order.
func (r *Result) Positional() []value.Value {
	v, _ := r.record.Get(PositionalKey)
	list, _ := v.AsList()

	return list
}

// Separated returns the tokens that followed "--". The boolean is false
// when Options.Separate was not set, in which case those tokens are part of
// Positional.
func (r *Result) Separated() ([]string, bool) {
	v, ok := r.record.Get(SeparatorKey)
	if !ok {
		return nil, false
	}

	list, ok := v.AsList()
	if !ok {
		return []string{v.String()}, true
	}

	out := make([]string, 0, len(list))
	for _, x := range list {
		out = append(out, x.String())
	}

	return out, true
}

// Interface converts the record into plain Go maps and slices.
func (r *Result) Interface() map[string]any {
	return r.record.Interface()
}

// MarshalYAML implements yaml.Marshaler, keeping keys in the order they
// were first written.
func (r *Result) MarshalYAML() (any, error) {
	return r.record.Node(), nil
}
