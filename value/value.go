package value

import (
	"fmt"
	"slices"
	"strings"
)

// Value is a single node of a parsed record.
type Value struct {
	kind KindEnum
	b    bool
	n    float64
	s    string
	list []Value
	m    *Map
}

func Null() Value { return Value{kind: KindNull} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

func String(s string) Value { return Value{kind: KindString, s: s} }

// List returns a list value holding a copy of vs. An empty call yields an
// empty, non-placeholder list.
func List(vs ...Value) Value {
	list := make([]Value, 0, len(vs))
	list = append(list, vs...)

	return Value{kind: KindList, list: list}
}

// ListOf wraps vs without copying. A nil slice produces a placeholder list.
func ListOf(vs []Value) Value { return Value{kind: KindList, list: vs} }

// MapOf wraps m. A nil map produces a placeholder map.
func MapOf(m *Map) Value { return Value{kind: KindMap, m: m} }

// Strings builds a list of string values.
func Strings(ss ...string) Value {
	list := make([]Value, 0, len(ss))
	for _, s := range ss {
		list = append(list, String(s))
	}

	return Value{kind: KindList, list: list}
}

func (v Value) Kind() KindEnum { return v.kind }

// IsValid reports whether v holds anything at all.
func (v Value) IsValid() bool { return v.kind != 0 }

// IsPlaceholder reports whether v is a container kind without backing storage.
func (v Value) IsPlaceholder() bool {
	switch v.kind {
	case KindList:
		return v.list == nil
	case KindMap:
		return v.m == nil
	default:
		return false
	}
}

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

func (v Value) AsList() ([]Value, bool) { return v.list, v.kind == KindList }

func (v Value) AsMap() (*Map, bool) { return v.m, v.kind == KindMap }

// Append returns a new list value with x appended, leaving v untouched.
// It panics when v is not a list.
func (v Value) Append(x Value) Value {
	if v.kind != KindList {
		panic("value: Append called on " + v.kind.String())
	}

	return Value{kind: KindList, list: append(slices.Clip(v.list), x)}
}

// Push appends x the way the builtin append does: the result may share
// v's backing array, so v must not be used afterwards. It panics when v is
// not a list.
func (v Value) Push(x Value) Value {
	if v.kind != KindList {
		panic("value: Push called on " + v.kind.String())
	}

	return Value{kind: KindList, list: append(v.list, x)}
}

// Clone returns a deep copy of v. Placeholders stay placeholders.
func (v Value) Clone() Value {
	switch {
	case v.IsPlaceholder():
		return v
	case v.kind == KindList:
		list := make([]Value, 0, len(v.list))
		for _, x := range v.list {
			list = append(list, x.Clone())
		}

		return Value{kind: KindList, list: list}
	case v.kind == KindMap:
		return Value{kind: KindMap, m: v.m.Clone()}
	default:
		return v
	}
}

// Equal reports deep structural equality.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	default:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.n == other.n
	case KindString:
		return v.s == other.s
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}

		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}

		return true
	case KindMap:
		return v.m.Equal(other.m)
	}
}

// Interface converts v into plain Go values: nil, bool, float64, string,
// []any and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	default:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindList:
		out := make([]any, 0, len(v.list))
		for _, x := range v.list {
			out = append(out, x.Interface())
		}

		return out
	case KindMap:
		return v.m.Interface()
	}
}

// String renders v as text. Strings come back verbatim and lists are
// comma-joined, so a list of positionals turns back into its tokens.
func (v Value) String() string {
	switch v.kind {
	default:
		return "<invalid>"
	case KindNull:
		return "null"
	case KindBool:
		if v.b {
			return "true"
		}

		return "false"
	case KindNumber:
		return FormatNumber(v.n)
	case KindString:
		return v.s
	case KindList:
		parts := make([]string, 0, len(v.list))
		for _, x := range v.list {
			parts = append(parts, x.String())
		}

		return strings.Join(parts, ",")
	case KindMap:
		return v.m.String()
	}
}

// GoString makes %#v output readable in test failures.
func (v Value) GoString() string {
	if v.kind == KindString {
		return fmt.Sprintf("value.String(%q)", v.s)
	}

	return fmt.Sprintf("value.%s(%s)", strings.TrimPrefix(v.kind.String(), "Kind"), v.String())
}
