package options

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decode parses YAML data into Options.
func Decode(data []byte) (*Options, error) {
	var opts Options

	err := yaml.Unmarshal(data, &opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse options YAML: %w", err)
	}

	return &opts, nil
}

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// --- BoolSpec YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for BoolSpec.
// Accepts a YAML boolean (true enables every long flag), a single key, or
// an array of keys.
func (b *BoolSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!bool" {
		var all bool

		err := node.Decode(&all)
		if err != nil {
			return err
		}

		*b = BoolSpec{All: all}

		return nil
	}

	var keys StringOrArray

	err := keys.UnmarshalYAML(node)
	if err != nil {
		return fmt.Errorf("boolean: %w", err)
	}

	*b = BoolSpec{Keys: keys}

	return nil
}

// MarshalYAML implements custom YAML marshaling for BoolSpec.
func (b BoolSpec) MarshalYAML() (any, error) {
	if b.All {
		return true, nil
	}

	return b.Keys.MarshalYAML()
}

// IsZero lets omitempty skip an unset BoolSpec.
func (b BoolSpec) IsZero() bool {
	return !b.All && b.Keys.IsEmpty()
}
