package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	kindStructName = "struct"
	kindEnumName   = "enum"

	listPrefix = "[]"
	mapPrefix  = "map["
)

// LoadFile loads a YAML schema description from the given path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses a YAML schema description and resolves type references.
func Parse(data []byte) (*Schema, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	return f.Schema()
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Types {
		td := &f.Types[i]
		if td.Kind != "" {
			continue
		}

		td.Kind = kindStructName
		if len(td.Variants) > 0 {
			td.Kind = kindEnumName
		}
	}
}

// Schema builds the node graph described by f. Every declared type becomes
// a top-level node in declaration order.
func (f *File) Schema() (*Schema, error) {
	byName := make(map[string]*Node, len(f.Types))
	s := &Schema{Nodes: make([]*Node, 0, len(f.Types))}

	for _, td := range f.Types {
		if _, ok := byName[td.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateType, td.Name)
		}

		n := &Node{Name: td.Name}

		switch td.Kind {
		case kindStructName, "":
			n.Kind = KindStruct
		case kindEnumName:
			n.Kind = KindEnum
		default:
			return nil, fmt.Errorf("%w: type %q has invalid kind %q", ErrSchema, td.Name, td.Kind)
		}

		byName[td.Name] = n
		s.Nodes = append(s.Nodes, n)
	}

	for i, td := range f.Types {
		n := s.Nodes[i]

		fields, err := resolveFields(td.Name, td.Fields, byName)
		if err != nil {
			return nil, err
		}

		n.Fields = fields

		for _, vd := range td.Variants {
			vf, err := resolveFields(td.Name+"."+vd.Tag, vd.Fields, byName)
			if err != nil {
				return nil, err
			}

			n.Variants = append(n.Variants, Variant{Tag: vd.Tag, Fields: vf})
		}
	}

	return s, nil
}

func resolveFields(owner string, defs []FieldDef, byName map[string]*Node) ([]Field, error) {
	if len(defs) == 0 {
		return nil, nil
	}

	fields := make([]Field, 0, len(defs))

	for _, fd := range defs {
		f := Field{Name: fd.Name}

		if fd.Type != "" {
			shape, typeName := parseTypeRef(fd.Type)

			n, ok := byName[typeName]
			if !ok {
				return nil, fmt.Errorf("%w: %q referenced by %s.%s", ErrUnknownType, typeName, owner, fd.Name)
			}

			f.Type = n
			f.Shape = shape
		}

		fields = append(fields, f)
	}

	return fields, nil
}

// parseTypeRef splits "[]T", "map[K]T", "*T" and "T" into a shape and a
// type name.
func parseTypeRef(ref string) (Shape, string) {
	ref = strings.TrimSpace(ref)

	switch {
	case strings.HasPrefix(ref, listPrefix):
		return ShapeList, strings.TrimPrefix(strings.TrimPrefix(ref, listPrefix), "*")
	case strings.HasPrefix(ref, mapPrefix):
		if end := strings.IndexByte(ref, ']'); end >= 0 {
			return ShapeMap, strings.TrimPrefix(ref[end+1:], "*")
		}

		return ShapeMap, ""
	default:
		return ShapeValue, strings.TrimPrefix(ref, "*")
	}
}

// Describe converts s back into its YAML description. Every reachable node
// becomes a declared type, so node names must be unique.
func Describe(s *Schema) (*File, error) {
	f := &File{Version: "1"}
	names := make(map[string]*Node)

	err := Walk(s, func(n *Node) error {
		if other, ok := names[n.Name]; ok && other != n {
			return fmt.Errorf("%w: %q declared by two different nodes", ErrDuplicateType, n.Name)
		}

		names[n.Name] = n

		td := TypeDef{Name: n.Name, Kind: n.Kind.String(), Fields: describeFields(n.Fields)}
		for _, v := range n.Variants {
			td.Variants = append(td.Variants, VariantDef{Tag: v.Tag, Fields: describeFields(v.Fields)})
		}

		f.Types = append(f.Types, td)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return f, nil
}

func describeFields(fields []Field) []FieldDef {
	if len(fields) == 0 {
		return nil
	}

	defs := make([]FieldDef, 0, len(fields))

	for _, fl := range fields {
		fd := FieldDef{Name: fl.Name}

		if fl.Type != nil {
			switch fl.Shape {
			case ShapeList:
				fd.Type = listPrefix + fl.Type.Name
			case ShapeMap:
				fd.Type = "map[string]" + fl.Type.Name
			default:
				fd.Type = fl.Type.Name
			}
		}

		defs = append(defs, fd)
	}

	return defs
}

// Marshal serializes s to its YAML description.
func Marshal(s *Schema) ([]byte, error) {
	f, err := Describe(s)
	if err != nil {
		return nil, err
	}

	return yaml.Marshal(f)
}

// WriteFile writes the YAML description of s to the given path.
func WriteFile(s *Schema, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}
