package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservationSchema() *Schema {
	fields := func() []Field {
		return []Field{Scalar("event_id"), Scalar("ticket_type"), Scalar("user_id")}
	}

	return New(NewEnum("CallbackQuery",
		NewVariant("CancelEventReservation", fields()...),
		NewVariant("ConfirmEventReservation", fields()...),
	))
}

func TestBuilders(t *testing.T) {
	line := NewStruct("Line", Scalar("sku"), Scalar("qty"))
	order := NewStruct("Order",
		Scalar("id"),
		Nested("primary", line),
		ListOf("lines", line),
		MapOf("by_sku", line),
	)

	assert.Equal(t, KindStruct, order.Kind)
	require.Len(t, order.Fields, 4)
	assert.True(t, order.Fields[0].IsScalar())
	assert.Equal(t, ShapeValue, order.Fields[1].Shape)
	assert.Equal(t, ShapeList, order.Fields[2].Shape)
	assert.Equal(t, ShapeMap, order.Fields[3].Shape)
	assert.Same(t, line, order.Fields[2].Type)

	f, ok := order.Field("lines")
	require.True(t, ok)
	assert.Equal(t, "lines", f.Name)

	_, ok = order.Field("missing")
	assert.False(t, ok)
}

func TestNode_Variant(t *testing.T) {
	s := reservationSchema()
	q := s.Nodes[0]

	v, ok := q.Variant("ConfirmEventReservation")
	require.True(t, ok)
	assert.Len(t, v.Fields, 3)

	f, ok := v.Field("user_id")
	require.True(t, ok)
	assert.True(t, f.IsScalar())

	_, ok = q.Variant("Unknown")
	assert.False(t, ok)
}

func TestSchema_Lookup(t *testing.T) {
	inner := NewStruct("Inner", Scalar("x"))
	s := New(NewStruct("Outer", Nested("inner", inner)))

	assert.Same(t, s.Nodes[0], s.Lookup("Outer"))
	assert.Same(t, inner, s.Lookup("Inner"))
	assert.Nil(t, s.Lookup("Nope"))

	var nilSchema *Schema
	assert.Nil(t, nilSchema.Lookup("Outer"))
}

func TestWalk_VisitsOnceInOrder(t *testing.T) {
	tree := NewStruct("Tree", Scalar("value"))
	tree.Fields = append(tree.Fields, ListOf("children", tree))
	leaf := NewStruct("Leaf", Scalar("v"))
	root := NewEnum("Root",
		NewVariant("A", Nested("tree", tree)),
		NewVariant("B", Nested("leaf", leaf), Nested("tree", tree)),
	)

	var visited []string
	err := Walk(New(root, leaf), func(n *Node) error {
		visited = append(visited, n.Name)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Root", "Tree", "Leaf"}, visited)
}

func TestWalk_StopsOnError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0

	err := Walk(reservationSchema(), func(n *Node) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)

	assert.NoError(t, Walk(nil, func(*Node) error { return stop }))
}

func TestKindAndShape_String(t *testing.T) {
	assert.Equal(t, "struct", KindStruct.String())
	assert.Equal(t, "enum", KindEnum.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())

	assert.Equal(t, "value", ShapeValue.String())
	assert.Equal(t, "list", ShapeList.String())
	assert.Equal(t, "map", ShapeMap.String())
	assert.Equal(t, "Shape(7)", Shape(7).String())
}
