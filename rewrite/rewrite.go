package rewrite

import (
	"fmt"

	"github.com/vadim-frolov/serde-compact/compact"
	"github.com/vadim-frolov/serde-compact/schema"
)

// Emitter produces a renamed copy of a schema from a compaction table.
type Emitter interface {
	Emit(s *schema.Schema, t *compact.Table) (*schema.Schema, error)
}

var (
	_ Emitter = Renamer{}
	_ Emitter = Restorer{}
)

// Renamer replaces every variant tag and field name with its code. Type
// names, kinds, shapes, declaration order and the sharing of nested nodes
// (including cycles) are preserved.
type Renamer struct{}

// Emit implements Emitter.
func (Renamer) Emit(s *schema.Schema, t *compact.Table) (*schema.Schema, error) {
	return copySchema(s, t.CodeFor)
}

// Restorer is the inverse of Renamer: it replaces codes with the names they
// were assigned to.
type Restorer struct{}

// Emit implements Emitter.
func (Restorer) Emit(s *schema.Schema, t *compact.Table) (*schema.Schema, error) {
	return copySchema(s, t.NameFor)
}

// Rename is shorthand for Renamer{}.Emit.
func Rename(s *schema.Schema, t *compact.Table) (*schema.Schema, error) {
	return Renamer{}.Emit(s, t)
}

func copySchema(s *schema.Schema, lookup func(string) (string, error)) (*schema.Schema, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: schema is nil", schema.ErrSchema)
	}

	c := &copier{lookup: lookup, done: make(map[*schema.Node]*schema.Node)}
	out := &schema.Schema{Nodes: make([]*schema.Node, 0, len(s.Nodes))}

	for _, n := range s.Nodes {
		m, err := c.node(n)
		if err != nil {
			return nil, err
		}

		out.Nodes = append(out.Nodes, m)
	}

	return out, nil
}

// copier deep-copies a node graph, renaming as it goes. done maps original
// nodes to their copies so shared and recursive nodes stay shared.
type copier struct {
	lookup func(string) (string, error)
	done   map[*schema.Node]*schema.Node
}

func (c *copier) node(n *schema.Node) (*schema.Node, error) {
	if n == nil {
		return nil, nil
	}

	if m, ok := c.done[n]; ok {
		return m, nil
	}

	m := &schema.Node{Kind: n.Kind, Name: n.Name}
	c.done[n] = m

	fields, err := c.fields(n.Name, n.Fields)
	if err != nil {
		return nil, err
	}

	m.Fields = fields

	if len(n.Variants) > 0 {
		m.Variants = make([]schema.Variant, 0, len(n.Variants))
	}

	for _, v := range n.Variants {
		tag, err := c.lookup(v.Tag)
		if err != nil {
			return nil, fmt.Errorf("%s: variant tag: %w", n.Name, err)
		}

		vf, err := c.fields(n.Name+"."+v.Tag, v.Fields)
		if err != nil {
			return nil, err
		}

		m.Variants = append(m.Variants, schema.Variant{Tag: tag, Fields: vf})
	}

	return m, nil
}

func (c *copier) fields(owner string, fields []schema.Field) ([]schema.Field, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	out := make([]schema.Field, 0, len(fields))

	for _, f := range fields {
		name, err := c.lookup(f.Name)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", owner, f.Name, err)
		}

		typ, err := c.node(f.Type)
		if err != nil {
			return nil, err
		}

		out = append(out, schema.Field{Name: name, Type: typ, Shape: f.Shape})
	}

	return out, nil
}
