package schema

// Field is a named member of a struct or of an enum variant.
// Type is nil for scalar and opaque values.
type Field struct {
	Name  string
	Type  *Node
	Shape Shape
}

// IsScalar reports whether the field has no nested type.
func (f Field) IsScalar() bool {
	return f.Type == nil
}

// Variant is one case of an enum: a tag plus the fields it carries.
type Variant struct {
	Tag    string
	Fields []Field
}

// Field returns the variant's field with the given name.
func (v *Variant) Field(name string) (Field, bool) {
	return fieldByName(v.Fields, name)
}

// Node is a named type: a struct with Fields or an enum with Variants.
type Node struct {
	Kind     Kind
	Name     string
	Fields   []Field
	Variants []Variant
}

// Field returns the struct's field with the given name.
func (n *Node) Field(name string) (Field, bool) {
	return fieldByName(n.Fields, name)
}

// Variant returns the enum's variant with the given tag.
func (n *Node) Variant(tag string) (*Variant, bool) {
	for i := range n.Variants {
		if n.Variants[i].Tag == tag {
			return &n.Variants[i], true
		}
	}

	return nil, false
}

// Schema is an ordered collection of type nodes.
type Schema struct {
	Nodes []*Node
}

// New creates a Schema from the given top-level nodes.
func New(nodes ...*Node) *Schema {
	return &Schema{Nodes: nodes}
}

// Lookup returns the first node named name, searching top-level nodes first
// and then every nested node in walk order.
func (s *Schema) Lookup(name string) *Node {
	if s == nil {
		return nil
	}

	for _, n := range s.Nodes {
		if n != nil && n.Name == name {
			return n
		}
	}

	var found *Node

	_ = Walk(s, func(n *Node) error {
		if found == nil && n.Name == name {
			found = n
		}

		return nil
	})

	return found
}

// NewStruct creates a struct node.
func NewStruct(name string, fields ...Field) *Node {
	return &Node{Kind: KindStruct, Name: name, Fields: fields}
}

// NewEnum creates an enum node.
func NewEnum(name string, variants ...Variant) *Node {
	return &Node{Kind: KindEnum, Name: name, Variants: variants}
}

// NewVariant creates an enum variant.
func NewVariant(tag string, fields ...Field) Variant {
	return Variant{Tag: tag, Fields: fields}
}

// Scalar creates a field holding a plain value.
func Scalar(name string) Field {
	return Field{Name: name}
}

// Nested creates a field holding a single value of type n.
func Nested(name string, n *Node) Field {
	return Field{Name: name, Type: n, Shape: ShapeValue}
}

// ListOf creates a field holding a list of values of type n.
func ListOf(name string, n *Node) Field {
	return Field{Name: name, Type: n, Shape: ShapeList}
}

// MapOf creates a field holding a map whose values are of type n.
func MapOf(name string, n *Node) Field {
	return Field{Name: name, Type: n, Shape: ShapeMap}
}

func fieldByName(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}
