package value

import (
	"slices"
	"strings"
)

// Map is a string-keyed map that remembers insertion order.
type Map struct {
	keys []string
	vals map[string]Value
}

func NewMap() *Map {
	return &Map{vals: make(map[string]Value)}
}

// Len returns the number of keys, treating a nil map as empty.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}

	v, ok := m.vals[key]

	return v, ok
}

func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores v under key. A new key is placed last; an existing key keeps
// its position. The zero Map is ready to use.
func (m *Map) Set(key string, v Value) *Map {
	if m.vals == nil {
		m.vals = make(map[string]Value)
	}

	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.vals[key] = v

	return m
}

func (m *Map) Delete(key string) {
	if _, ok := m.vals[key]; !ok {
		return
	}

	delete(m.vals, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key string, v Value) bool) {
	if m == nil {
		return
	}

	for _, k := range m.keys {
		if !fn(k, m.vals[k]) {
			return
		}
	}
}

// Clone returns a deep copy of m.
func (m *Map) Clone() *Map {
	out := NewMap()

	m.Range(func(k string, v Value) bool {
		out.Set(k, v.Clone())
		return true
	})

	return out
}

func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}

	equal := true

	m.Range(func(k string, v Value) bool {
		ov, ok := other.Get(k)
		equal = ok && v.Equal(ov)

		return equal
	})

	return equal
}

func (m *Map) Interface() map[string]any {
	out := make(map[string]any, m.Len())

	m.Range(func(k string, v Value) bool {
		out[k] = v.Interface()
		return true
	})

	return out
}

func (m *Map) String() string {
	var sb strings.Builder

	sb.WriteString("map[")

	first := true

	m.Range(func(k string, v Value) bool {
		if !first {
			sb.WriteByte(' ')
		}

		first = false

		sb.WriteString(k)
		sb.WriteByte(':')
		sb.WriteString(v.String())

		return true
	})

	sb.WriteByte(']')

	return sb.String()
}
