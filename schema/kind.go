package schema

//go:generate go tool stringer -type=Kind,Shape -linecomment -output=kind_string.go

// Kind tells whether a Node is a struct or an enum.
type Kind int

const (
	_ Kind = iota // skip zero value, an unset Kind is invalid

	KindStruct // struct
	KindEnum   // enum
)

// Shape describes how a field's value wraps its nested type.
type Shape int

const (
	ShapeValue Shape = iota // value
	ShapeList               // list
	ShapeMap                // map
)
