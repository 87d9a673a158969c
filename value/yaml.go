package value

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// --- Value YAML methods ---

// MarshalYAML implements yaml.Marshaler. Maps keep their insertion order.
func (v Value) MarshalYAML() (any, error) {
	if !v.IsValid() {
		return nil, errors.New("cannot marshal an unset value")
	}

	return v.Node(), nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Value.
// Accepts any scalar, sequence or mapping; aliases are followed.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	out, err := FromNode(node)
	if err != nil {
		return err
	}

	*v = out

	return nil
}

// Node converts v into a yaml.Node tree.
func (v Value) Node() *yaml.Node {
	switch v.kind {
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v.String()}
	case KindNumber:
		return numberNode(v.n)
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.s}
	case KindList:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, x := range v.list {
			node.Content = append(node.Content, x.Node())
		}

		return node
	case KindMap:
		return v.m.Node()
	}
}

func numberNode(n float64) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float"}

	switch {
	case math.IsNaN(n):
		node.Value = ".nan"
	case math.IsInf(n, 1):
		node.Value = ".inf"
	case math.IsInf(n, -1):
		node.Value = "-.inf"
	case n == math.Trunc(n) && math.Abs(n) < 1e21:
		node.Tag = "!!int"
		node.Value = FormatNumber(n)
	default:
		node.Value = FormatNumber(n)
	}

	return node
}

// FromNode converts a decoded YAML node into a Value.
func FromNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}

		return FromNode(node.Content[0])

	case yaml.AliasNode:
		if node.Alias == nil {
			return Value{}, errors.New("dangling YAML alias")
		}

		return FromNode(node.Alias)

	case yaml.ScalarNode:
		return fromScalar(node)

	case yaml.SequenceNode:
		list := make([]Value, 0, len(node.Content))

		for _, item := range node.Content {
			x, err := FromNode(item)
			if err != nil {
				return Value{}, err
			}

			list = append(list, x)
		}

		return ListOf(list), nil

	case yaml.MappingNode:
		m, err := mapFromNode(node)
		if err != nil {
			return Value{}, err
		}

		return MapOf(m), nil

	default:
		return Value{}, fmt.Errorf("unsupported YAML node kind %v", node.Kind)
	}
}

func fromScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil

	case "!!bool":
		var b bool

		err := node.Decode(&b)
		if err != nil {
			return Value{}, err
		}

		return Bool(b), nil

	case "!!int", "!!float":
		var n float64

		err := node.Decode(&n)
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", node.Value, err)
		}

		return Number(n), nil

	default:
		return String(node.Value), nil
	}
}

// --- Map YAML methods ---

// MarshalYAML implements yaml.Marshaler, preserving insertion order.
func (m *Map) MarshalYAML() (any, error) {
	return m.Node(), nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Map.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	out, err := mapFromNode(node)
	if err != nil {
		return err
	}

	*m = *out

	return nil
}

func (m *Map) Node() *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	m.Range(func(k string, v Value) bool {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			v.Node(),
		)

		return true
	})

	return node
}

func mapFromNode(node *yaml.Node) (*Map, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected mapping, got %v", node.Kind)
	}

	m := NewMap()

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}

		x, err := FromNode(valNode)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyNode.Value, err)
		}

		m.Set(keyNode.Value, x)
	}

	return m, nil
}
