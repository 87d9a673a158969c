package flags

import (
	"slices"

	"argmap/options"
)

// aliasGraph maps each key to the other members of its alias group.
type aliasGraph map[string][]string

// buildAliases merges every declaration into closed groups using
// union-find. Members are listed in the order they were first declared,
// walking declarations by sorted key.
func buildAliases(decl map[string]options.StringOrArray) aliasGraph {
	parent := map[string]string{}

	var order []string

	var find func(string) string
	find = func(k string) string {
		if _, ok := parent[k]; !ok {
			parent[k] = k
			order = append(order, k)
		}

		if parent[k] != k {
			parent[k] = find(parent[k])
		}

		return parent[k]
	}

	keys := make([]string, 0, len(decl))
	for k := range decl {
		if k != "" {
			keys = append(keys, k)
		}
	}

	slices.Sort(keys)

	for _, k := range keys {
		root := find(k)

		for _, other := range decl[k].Keys() {
			if r := find(other); r != root {
				parent[r] = root
			}
		}
	}

	groups := map[string][]string{}
	for _, k := range order {
		r := find(k)
		groups[r] = append(groups[r], k)
	}

	graph := make(aliasGraph, len(order))

	for _, k := range order {
		group := groups[find(k)]

		others := make([]string, 0, len(group)-1)
		for _, member := range group {
			if member != k {
				others = append(others, member)
			}
		}

		graph[k] = others
	}

	return graph
}
