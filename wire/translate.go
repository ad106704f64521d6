package wire

import (
	"fmt"
	"slices"

	"github.com/vadim-frolov/serde-compact/compact"
	"github.com/vadim-frolov/serde-compact/schema"
)

// Translator rewrites logical value trees to code-keyed trees and back using
// one compaction table. It holds no mutable state and is safe for concurrent
// use.
type Translator struct {
	table *compact.Table
}

// NewTranslator creates a Translator for t.
func NewTranslator(t *compact.Table) *Translator {
	return &Translator{table: t}
}

// Compact replaces names with codes in v, a logical value of type n. Struct
// fields come out as Objects in schema declaration order; map keys and
// scalar values are copied unchanged.
func (tr *Translator) Compact(n *schema.Node, v any) (any, error) {
	p := pass{
		ordered: true,
		resolve: func(key string) (string, string, error) {
			code, err := tr.table.CodeFor(key)
			return key, code, err
		},
	}

	return p.node(n, v)
}

// Expand replaces codes with names in v, a code-keyed value of type n. The
// result uses plain maps, ready for encoding/json to decode into Go types.
func (tr *Translator) Expand(n *schema.Node, v any) (any, error) {
	p := pass{
		resolve: func(key string) (string, string, error) {
			name, err := tr.table.NameFor(key)
			return name, name, err
		},
	}

	return p.node(n, v)
}

// pass is one direction of translation. resolve maps an input key to the
// schema name it stands for and to the key written out.
type pass struct {
	resolve func(key string) (name, out string, err error)
	ordered bool
}

func (p pass) node(n *schema.Node, v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch n.Kind {
	case schema.KindStruct:
		return p.record(n.Name, n.Fields, v)
	case schema.KindEnum:
		return p.enum(n, v)
	default:
		return nil, fmt.Errorf("%s: %w: node kind %s", n.Name, ErrValue, n.Kind)
	}
}

func (p pass) record(owner string, fields []schema.Field, v any) (any, error) {
	m, ok := asMap(v)
	if !ok {
		return nil, fmt.Errorf("%s: %w: expected object, got %T", owner, ErrShape, v)
	}

	type entry struct {
		index  int
		member Member
	}

	entries := make([]entry, 0, len(m))

	for key, val := range m {
		name, out, err := p.resolve(key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w %q: %w", owner, ErrUnknownField, key, err)
		}

		idx := slices.IndexFunc(fields, func(f schema.Field) bool { return f.Name == name })
		if idx < 0 {
			return nil, fmt.Errorf("%s: %w %q", owner, ErrUnknownField, name)
		}

		cv, err := p.value(owner+"."+name, fields[idx], val)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry{index: idx, member: Member{Key: out, Value: cv}})
	}

	slices.SortFunc(entries, func(a, b entry) int { return a.index - b.index })

	if p.ordered {
		obj := make(Object, len(entries))
		for i, e := range entries {
			obj[i] = e.member
		}

		return obj, nil
	}

	out := make(map[string]any, len(entries))
	for _, e := range entries {
		out[e.member.Key] = e.member.Value
	}

	return out, nil
}

func (p pass) enum(n *schema.Node, v any) (any, error) {
	if tag, ok := v.(string); ok {
		variant, out, err := p.variant(n, tag)
		if err != nil {
			return nil, err
		}

		if len(variant.Fields) > 0 {
			return nil, fmt.Errorf("%s: %w: variant %q carries fields but is a bare tag", n.Name, ErrShape, variant.Tag)
		}

		return out, nil
	}

	m, ok := asMap(v)
	if !ok || len(m) != 1 {
		return nil, fmt.Errorf("%s: %w: enum value must be a tag or an object with exactly one tag", n.Name, ErrShape)
	}

	for tag, payload := range m {
		variant, out, err := p.variant(n, tag)
		if err != nil {
			return nil, err
		}

		var inner any
		if payload != nil {
			inner, err = p.record(n.Name+"."+variant.Tag, variant.Fields, payload)
			if err != nil {
				return nil, err
			}
		}

		if p.ordered {
			return Object{{Key: out, Value: inner}}, nil
		}

		return map[string]any{out: inner}, nil
	}

	return nil, nil // unreachable: m has exactly one entry
}

func (p pass) variant(n *schema.Node, key string) (*schema.Variant, string, error) {
	name, out, err := p.resolve(key)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w %q: %w", n.Name, ErrUnknownVariant, key, err)
	}

	variant, ok := n.Variant(name)
	if !ok {
		return nil, "", fmt.Errorf("%s: %w %q", n.Name, ErrUnknownVariant, name)
	}

	return variant, out, nil
}

func (p pass) value(path string, f schema.Field, v any) (any, error) {
	if v == nil || f.Type == nil {
		return v, nil
	}

	switch f.Shape {
	case schema.ShapeList:
		items, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("%s: %w: expected list, got %T", path, ErrShape, v)
		}

		out := make([]any, len(items))
		for i, item := range items {
			cv, err := p.node(f.Type, item)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", path, i, err)
			}

			out[i] = cv
		}

		return out, nil

	case schema.ShapeMap:
		entries, ok := asMap(v)
		if !ok {
			return nil, fmt.Errorf("%s: %w: expected map, got %T", path, ErrShape, v)
		}

		out := make(map[string]any, len(entries))
		for key, item := range entries {
			cv, err := p.node(f.Type, item)
			if err != nil {
				return nil, fmt.Errorf("%s[%q]: %w", path, key, err)
			}

			out[key] = cv
		}

		return out, nil

	default:
		cv, err := p.node(f.Type, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		return cv, nil
	}
}

// asMap accepts the object forms produced by the codecs and by Compact.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Object:
		return m.Map(), true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}

			out[key] = val
		}

		return out, true
	default:
		return nil, false
	}
}
