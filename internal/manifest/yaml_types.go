package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- Import YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Import.
// Accepts either a bare import path or a {name, path} mapping.
func (i *Import) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var path string
		if err := node.Decode(&path); err != nil {
			return err
		}

		*i = Import{Path: path}

		return nil

	case yaml.MappingNode:
		type plain Import

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*i = Import(p)

		return nil

	default:
		return fmt.Errorf("line %d: import must be a path or a {name, path} mapping", node.Line)
	}
}

// MarshalYAML implements custom YAML marshaling for Import.
// Outputs the bare path when no name is set.
func (i Import) MarshalYAML() (any, error) {
	if i.Name == "" {
		return i.Path, nil
	}

	type plain Import

	return plain(i), nil
}

// --- Entry YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Entry.
// Accepts:
//   - Invocation string: "newtype(meters, float64, pub)"
//   - Mapping: {name: meters, type: float64, visibility: pub}
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var text string
		if err := node.Decode(&text); err != nil {
			return err
		}

		*e = Entry{Text: text}

	case yaml.MappingNode:
		type plain Entry

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*e = Entry(p)

	default:
		return fmt.Errorf("line %d: type entry must be an invocation string or a mapping", node.Line)
	}

	e.Line = node.Line
	e.Column = node.Column

	return nil
}

// MarshalYAML implements custom YAML marshaling for Entry.
// String entries stay strings.
func (e Entry) MarshalYAML() (any, error) {
	if e.IsText() {
		return e.Text, nil
	}

	type plain Entry

	return plain(e), nil
}
