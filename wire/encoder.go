package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/vadim-frolov/serde-compact/compact"
	"github.com/vadim-frolov/serde-compact/schema"
)

// Encoder turns values of one schema into compact payloads and back.
// It is safe for concurrent use.
type Encoder struct {
	schema *schema.Schema
	table  *compact.Table
	tr     *Translator
	codec  Codec
	cache  *compact.Cache
	logger compact.Logger
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithCodec sets the payload codec. Default is used otherwise.
func WithCodec(c Codec) Option {
	return func(e *Encoder) {
		if c != nil {
			e.codec = c
		}
	}
}

// WithLogger sets the logger for encode and decode events.
func WithLogger(l compact.Logger) Option {
	return func(e *Encoder) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithCache makes the Encoder obtain its table from c instead of compacting
// the schema itself.
func WithCache(c *compact.Cache) Option {
	return func(e *Encoder) {
		e.cache = c
	}
}

// WithTable pins the table, typically one loaded from a lock file. The
// schema must still compact to exactly this table.
func WithTable(t *compact.Table) Option {
	return func(e *Encoder) {
		e.table = t
	}
}

// NewEncoder creates an Encoder for s.
func NewEncoder(s *schema.Schema, opts ...Option) (*Encoder, error) {
	e := &Encoder{
		schema: s,
		codec:  Default,
		logger: compact.NopLogger{},
	}

	for _, opt := range opts {
		opt(e)
	}

	switch {
	case e.table != nil:
		if err := compact.Verify(s, e.table); err != nil {
			return nil, fmt.Errorf("pinned table does not match schema: %w", err)
		}
	case e.cache != nil:
		t, err := e.cache.Get(s)
		if err != nil {
			return nil, err
		}

		e.table = t
	default:
		t, err := compact.Compact(s)
		if err != nil {
			return nil, err
		}

		e.table = t
	}

	e.tr = NewTranslator(e.table)

	return e, nil
}

// NewEncoderFor creates an Encoder for the Go struct type T, deriving the
// schema with schema.FromType. The root node is named after T.
func NewEncoderFor[T any](opts ...Option) (*Encoder, error) {
	s, err := schema.FromType(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}

	return NewEncoder(s, opts...)
}

// Table returns the compaction table in use.
func (e *Encoder) Table() *compact.Table { return e.table }

// Codec returns the payload codec in use.
func (e *Encoder) Codec() Codec { return e.codec }

// Encode compacts v as a value of the named type and serializes it. v may be
// a logical tree or any Go value encoding/json can marshal into one.
func (e *Encoder) Encode(typeName string, v any) ([]byte, error) {
	n, err := e.node(typeName)
	if err != nil {
		return nil, err
	}

	tree, err := logical(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", typeName, err)
	}

	wireTree, err := e.tr.Compact(n, tree)
	if err != nil {
		e.logger.Warn("wire: value rejected", "type", typeName, "error", err)
		return nil, fmt.Errorf("encoding %s: %w", typeName, err)
	}

	data, err := e.codec.Marshal(wireTree)
	if err != nil {
		return nil, fmt.Errorf("encoding %s with %s: %w", typeName, e.codec.Name(), err)
	}

	e.logger.Debug("wire: encoded", "type", typeName, "codec", e.codec.Name(), "bytes", len(data))

	return data, nil
}

// Decode deserializes data, expands codes back to names and stores the
// result in out. A *any receives the logical tree with integers as int64
// (uint64 above math.MaxInt64) and other numbers as float64; any other
// pointer is filled through encoding/json.
func (e *Encoder) Decode(typeName string, data []byte, out any) error {
	n, err := e.node(typeName)
	if err != nil {
		return err
	}

	var raw any
	if err := e.codec.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding %s with %s: %w", typeName, e.codec.Name(), err)
	}

	tree, err := e.tr.Expand(n, raw)
	if err != nil {
		e.logger.Warn("wire: payload rejected", "type", typeName, "error", err)
		return fmt.Errorf("decoding %s: %w", typeName, err)
	}

	e.logger.Debug("wire: decoded", "type", typeName, "codec", e.codec.Name(), "bytes", len(data))

	if dst, ok := out.(*any); ok {
		*dst = normalize(tree)
		return nil
	}

	buf, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", typeName, err)
	}

	if err := json.Unmarshal(buf, out); err != nil {
		return fmt.Errorf("decoding %s: %w", typeName, err)
	}

	return nil
}

func (e *Encoder) node(typeName string) (*schema.Node, error) {
	n := e.schema.Lookup(typeName)
	if n == nil {
		return nil, fmt.Errorf("%w: %q", schema.ErrUnknownType, typeName)
	}

	return n, nil
}

// Marshal encodes v with a one-off Encoder for the Go type of v. Use an
// Encoder directly when encoding many values.
func Marshal[T any](v T, opts ...Option) ([]byte, error) {
	e, err := NewEncoderFor[T](opts...)
	if err != nil {
		return nil, err
	}

	return e.Encode(e.schema.Nodes[0].Name, v)
}

// Unmarshal decodes data produced by Marshal into out.
func Unmarshal[T any](data []byte, out *T, opts ...Option) error {
	e, err := NewEncoderFor[T](opts...)
	if err != nil {
		return err
	}

	return e.Decode(e.schema.Nodes[0].Name, data, out)
}

// logical converts v into the generic tree form Translator works on.
// Numbers keep their exact value; see normalize.
func logical(v any) (any, error) {
	switch v.(type) {
	case nil, string, map[string]any, []any, Object:
		return normalize(v), nil
	}

	buf, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}

	return normalize(tree), nil
}
