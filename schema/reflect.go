package schema

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

var (
	timeType          = reflect.TypeFor[time.Time]()
	jsonMarshalerType = reflect.TypeFor[json.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// Of derives a Schema from the dynamic type of v, which must be a struct or
// a pointer to one. See FromType.
func Of(v any) (*Schema, error) {
	return FromType(reflect.TypeOf(v))
}

// FromType derives a Schema from a Go struct type. Field names follow
// encoding/json: the json tag name when present, the Go field name
// otherwise. Unexported fields and fields tagged "-" are skipped, embedded
// structs without a tag name are flattened into their parent, pointers are
// followed, slices and arrays of structs become list fields and maps with
// struct values become map fields. Types that marshal themselves (time.Time,
// json.Marshaler, encoding.TextMarshaler) are scalars.
//
// Recursive types produce a cyclic node graph. The returned Schema has the
// root type as its only top-level node.
func FromType(t reflect.Type) (*Schema, error) {
	t = deref(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", ErrNotStruct, t)
	}

	r := &reflector{cache: make(map[reflect.Type]*Node)}

	return New(r.node(t)), nil
}

// reflector keeps one Node per Go type so that recursive types terminate.
type reflector struct {
	cache map[reflect.Type]*Node
}

func (r *reflector) node(t reflect.Type) *Node {
	if cached, ok := r.cache[t]; ok {
		return cached
	}

	name := t.Name()
	if name == "" {
		name = t.String()
	}

	n := &Node{Kind: KindStruct, Name: name}

	// Pre-cache before descending into fields.
	r.cache[t] = n
	n.Fields = r.fields(t)

	return n
}

// candidate is a field found while flattening embedded structs.
type candidate struct {
	name   string
	typ    reflect.Type
	depth  int
	tagged bool
}

// fields lists the fields of t the way encoding/json sees them: embedded
// structs are flattened, and when several fields share a name the shallowest
// wins, then the tagged one; remaining ties drop the name entirely.
func (r *reflector) fields(t reflect.Type) []Field {
	var found []candidate

	collect(t, 0, map[reflect.Type]bool{}, &found)

	byName := make(map[string][]int, len(found))
	for i, c := range found {
		byName[c.name] = append(byName[c.name], i)
	}

	winners := make(map[int]bool, len(byName))
	for _, group := range byName {
		if i, ok := dominant(found, group); ok {
			winners[i] = true
		}
	}

	var fields []Field

	for i, c := range found {
		if winners[i] {
			fields = append(fields, r.field(c.name, c.typ))
		}
	}

	return fields
}

func collect(t reflect.Type, depth int, visiting map[reflect.Type]bool, out *[]candidate) {
	if visiting[t] {
		return
	}

	visiting[t] = true
	defer delete(visiting, t)

	for i := range t.NumField() {
		sf := t.Field(i)

		name, tagged, skip := jsonName(sf)
		if skip {
			continue
		}

		if sf.Anonymous && !tagged {
			if ft := deref(sf.Type); ft.Kind() == reflect.Struct && !isOpaque(ft) {
				collect(ft, depth+1, visiting, out)
				continue
			}
		}

		if !sf.IsExported() {
			continue
		}

		*out = append(*out, candidate{name: name, typ: sf.Type, depth: depth, tagged: tagged})
	}
}

// dominant picks the field that owns a name among the candidates at the
// given indexes of found.
func dominant(found []candidate, group []int) (int, bool) {
	minDepth := found[group[0]].depth
	for _, i := range group[1:] {
		minDepth = min(minDepth, found[i].depth)
	}

	var shallow, tagged []int

	for _, i := range group {
		if found[i].depth != minDepth {
			continue
		}

		shallow = append(shallow, i)

		if found[i].tagged {
			tagged = append(tagged, i)
		}
	}

	switch {
	case len(shallow) == 1:
		return shallow[0], true
	case len(tagged) == 1:
		return tagged[0], true
	default:
		return 0, false
	}
}
