package schema

import (
	"fmt"

	"github.com/vadim-frolov/serde-compact/internal/diagnostic"
)

// Validate checks every node reachable from s and reports all problems at
// once. A schema is well-formed when the result has no errors: every type,
// variant and field has a name, no struct or variant declares a field twice
// and no enum declares a tag twice.
func Validate(s *Schema) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError("schema_is_nil", ErrSchema, "schema is nil", "", "")
		return res
	}

	_ = Walk(s, func(n *Node) error {
		validateNode(res, n)
		return nil
	})

	return res
}

func validateNode(res *diagnostic.Diagnostics, n *Node) {
	if n.Name == "" {
		res.AddError("empty_tag", ErrEmptyTag, fmt.Sprintf("%s has no name", n.Kind), "", "")
	}

	switch n.Kind {
	case KindStruct:
		if len(n.Variants) > 0 {
			res.AddError("struct_with_variants", ErrSchema, "struct declares variants", n.Name, "")
		}

		validateFields(res, n.Name, n.Fields)

	case KindEnum:
		if len(n.Fields) > 0 {
			res.AddError("enum_with_fields", ErrSchema, "enum declares fields outside of a variant", n.Name, "")
		}

		if len(n.Variants) == 0 {
			res.AddWarning("empty_enum", "enum has no variants", n.Name, "")
		}

		validateVariants(res, n)

	default:
		res.AddError("invalid_kind", ErrSchema, fmt.Sprintf("invalid node kind %s", n.Kind), n.Name, "")
	}
}

func validateVariants(res *diagnostic.Diagnostics, n *Node) {
	seen := make(map[string]struct{}, len(n.Variants))

	for i := range n.Variants {
		v := &n.Variants[i]
		path := n.Name + "." + v.Tag

		if v.Tag == "" {
			res.AddError("empty_tag", ErrEmptyTag, fmt.Sprintf("variant #%d has no tag", i), n.Name, "")
		} else if _, ok := seen[v.Tag]; ok {
			res.AddError("duplicate_variant", ErrDuplicateField, fmt.Sprintf("duplicate variant %q", v.Tag), n.Name, v.Tag)
		} else {
			seen[v.Tag] = struct{}{}
		}

		validateFields(res, path, v.Fields)
	}
}

func validateFields(res *diagnostic.Diagnostics, typePath string, fields []Field) {
	seen := make(map[string]struct{}, len(fields))

	for i, f := range fields {
		if f.Name == "" {
			res.AddError("empty_tag", ErrEmptyTag, fmt.Sprintf("field #%d has no name", i), typePath, "")
			continue
		}

		if _, ok := seen[f.Name]; ok {
			res.AddError("duplicate_field", ErrDuplicateField, fmt.Sprintf("duplicate field %q", f.Name), typePath, f.Name)
			continue
		}

		seen[f.Name] = struct{}{}

		if f.Shape < ShapeValue || f.Shape > ShapeMap {
			res.AddError("invalid_shape", ErrSchema, fmt.Sprintf("invalid field shape %s", f.Shape), typePath, f.Name)
		}
	}
}
