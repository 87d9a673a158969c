package keypath

import (
	"slices"
	"strconv"
	"strings"

	"argmap/internal/common"
	"argmap/value"
)

var guarded = []string{"__proto__", "constructor"}

// Split splits a dotted key into its segments.
func Split(key string) []string {
	return strings.Split(key, ".")
}

// IsGuarded reports whether a segment is on the deny list.
func IsGuarded(segment string) bool {
	return slices.Contains(guarded, segment)
}

// Set writes v at path under root. overwrite is asked about the final
// segment and, when it returns true, the slot is replaced rather than
// accumulated. Set reports false when the path was dropped.
//
// At the final segment the slot is replaced when it is absent or holds a
// boolean, extended when it holds a list, and otherwise turned into the
// two-element list [old, v].
func Set(root *value.Map, path []string, v value.Value, overwrite func(last string) bool) bool {
	if len(path) == 0 || slices.ContainsFunc(path, IsGuarded) {
		return false
	}

	forced := overwrite != nil && overwrite(path[len(path)-1])

	_, ok := assign(value.MapOf(root), path, v, forced)

	return ok
}

// assign writes into the container cur and returns it updated. Containers
// under root belong to the record, so both maps and lists are updated in
// place; a grown list still comes back as a value the caller must store.
func assign(cur value.Value, path []string, v value.Value, forced bool) (value.Value, bool) {
	segment, rest := path[0], path[1:]

	if m, ok := cur.AsMap(); ok {
		old, exists := m.Get(segment)

		next, ok := step(old, exists, rest, v, forced)
		if !ok {
			return cur, false
		}

		m.Set(segment, next)

		return cur, true
	}

	list, _ := cur.AsList()

	idx, ok := index(segment, len(list))
	if !ok {
		return cur, false
	}

	var old value.Value

	exists := idx < len(list)
	if exists {
		old = list[idx]
	}

	next, ok := step(old, exists, rest, v, forced)
	if !ok {
		return cur, false
	}

	if !exists {
		return cur.Push(next), true
	}

	list[idx] = next

	return cur, true
}

// step produces the new content of a slot: the merged terminal value, or
// the child container after descending into it.
func step(old value.Value, exists bool, rest []string, v value.Value, forced bool) (value.Value, bool) {
	if len(rest) == 0 {
		return merge(old, exists, v, forced), true
	}

	switch {
	case !exists:
		old = value.MapOf(value.NewMap())
	case old.IsPlaceholder() && old.Kind() == value.KindMap:
		old = value.MapOf(value.NewMap())
	case old.IsPlaceholder() && old.Kind() == value.KindList:
		old = value.List()
	case !old.Kind().IsContainer():
		return old, false
	}

	return assign(old, rest, v, forced)
}

func merge(old value.Value, exists bool, v value.Value, forced bool) value.Value {
	switch {
	case !exists, forced, old.Kind() == value.KindBool:
		return v
	case old.Kind() == value.KindList:
		return old.Push(v)
	default:
		return value.List(old, v)
	}
}

// index parses a list index. One past the end is allowed and means append.
func index(segment string, length int) (int, bool) {
	if segment == "" || (len(segment) > 1 && segment[0] == '0') {
		return 0, false
	}

	idx, err := strconv.Atoi(segment)
	if err != nil || !common.IsInRange(0, idx, length) {
		return 0, false
	}

	return idx, true
}

// Has reports whether path already resolves to a slot under root. Walking
// through a scalar or a missing intermediate yields false.
func Has(root *value.Map, path []string) bool {
	cur := value.MapOf(root)

	for i, segment := range path {
		var (
			next  value.Value
			found bool
		)

		if m, ok := cur.AsMap(); ok {
			next, found = m.Get(segment)
		} else if list, ok := cur.AsList(); ok {
			if idx, ok := index(segment, len(list)); ok && idx < len(list) {
				next, found = list[idx], true
			}
		}

		if !found {
			return false
		}

		if i == len(path)-1 {
			return true
		}

		cur = next
	}

	return false
}

// Get returns the value at path, if any.
func Get(root *value.Map, path []string) (value.Value, bool) {
	if !Has(root, path) {
		return value.Value{}, false
	}

	cur := value.MapOf(root)

	for _, segment := range path {
		if m, ok := cur.AsMap(); ok {
			cur, _ = m.Get(segment)
			continue
		}

		list, _ := cur.AsList()
		idx, _ := index(segment, len(list))
		cur = list[idx]
	}

	return cur, true
}
