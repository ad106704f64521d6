package compact

import (
	"github.com/vadim-frolov/serde-compact/schema"
)

// Collect returns the distinct wire names of s: every variant tag and every
// field name of every reachable struct and variant, including nested types.
// Names are returned in the order they are first encountered. Type names are
// not part of the set since they never reach the wire.
//
// The schema is validated first; a malformed schema yields an error matching
// ErrDuplicateField or ErrEmptyTag.
func Collect(s *schema.Schema) ([]string, error) {
	if err := schema.Validate(s).Error(); err != nil {
		return nil, err
	}

	return collectNames(s), nil
}

func collectNames(s *schema.Schema) []string {
	seen := make(map[string]struct{})
	var names []string

	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	addFields := func(fields []schema.Field) {
		for _, f := range fields {
			add(f.Name)
		}
	}

	_ = schema.Walk(s, func(n *schema.Node) error {
		switch n.Kind {
		case schema.KindStruct:
			addFields(n.Fields)
		case schema.KindEnum:
			for _, v := range n.Variants {
				add(v.Tag)
				addFields(v.Fields)
			}
		}

		return nil
	})

	return names
}
