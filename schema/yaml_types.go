package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is the YAML description of a schema.
type File struct {
	Version string    `yaml:"version"`
	Types   []TypeDef `yaml:"types"`
}

// TypeDef declares one struct or enum.
type TypeDef struct {
	Name string `yaml:"name"`
	// Kind is "struct" or "enum". When empty it is inferred from Variants.
	Kind     string       `yaml:"kind,omitempty"`
	Fields   []FieldDef   `yaml:"fields,omitempty"`
	Variants []VariantDef `yaml:"variants,omitempty"`
}

// VariantDef declares one enum variant.
type VariantDef struct {
	Tag    string     `yaml:"tag"`
	Fields []FieldDef `yaml:"fields,omitempty"`
}

// FieldDef declares a field. A bare string is a scalar field.
type FieldDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for FieldDef.
// Accepts:
//   - Single string: "event_id"
//   - Map: {name: lines, type: "[]Line"}
func (f *FieldDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string

		if err := node.Decode(&name); err != nil {
			return err
		}

		*f = FieldDef{Name: name}

		return nil

	case yaml.MappingNode:
		// Plain alias type avoids recursing into this method.
		type plain FieldDef

		var p plain

		if err := node.Decode(&p); err != nil {
			return err
		}

		*f = FieldDef(p)

		return nil

	default:
		return fmt.Errorf("expected field name or mapping, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for FieldDef.
// Scalar fields are written as a bare name.
func (f FieldDef) MarshalYAML() (any, error) {
	if f.Type == "" {
		return f.Name, nil
	}

	type plain FieldDef

	return plain(f), nil
}
