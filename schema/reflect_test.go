package schema

import (
	"encoding/json"
	"maps"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reflectLine struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"qty,omitempty"`
}

type reflectAudit struct {
	CreatedBy string `json:"created_by"`
}

type reflectMoney string

func (m reflectMoney) MarshalText() ([]byte, error) { return []byte(m), nil }

type reflectOrder struct {
	reflectAudit
	ID        int                     `json:"id"`
	Note      string                  // no tag: Go name
	Secret    string                  `json:"-"`
	internal  int
	Placed    time.Time               `json:"placed"`
	Total     reflectMoney            `json:"total"`
	Primary   *reflectLine            `json:"primary"`
	Lines     []reflectLine           `json:"lines"`
	BySKU     map[string]*reflectLine `json:"by_sku"`
	Fixed     [2]reflectLine          `json:"fixed"`
	Tags      []string                `json:"tags"`
	Anonymous struct {
		X int `json:"x"`
	} `json:"anon"`
}

type reflectTree struct {
	Value    int            `json:"value"`
	Children []*reflectTree `json:"children"`
}

type reflectBase struct {
	ID    int    `json:"id"`
	Kind  string `json:"kind"`
	Title string `json:"Label"`
}

type reflectStamp struct {
	Kind  string `json:"kind"`
	By    string `json:"by"`
	Label string
}

type reflectShadowed struct {
	reflectBase
	reflectStamp
	ID int `json:"id"`
}

type reflectLoop struct {
	*reflectLoop
	Name string `json:"name"`
}

func fieldNames(fields []Field) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}

	return names
}

func TestFromType_Struct(t *testing.T) {
	s, err := Of(&reflectOrder{})
	require.NoError(t, err)
	require.Len(t, s.Nodes, 1)

	order := s.Nodes[0]
	assert.Equal(t, "reflectOrder", order.Name)
	assert.Equal(t, KindStruct, order.Kind)
	assert.Equal(t,
		[]string{"created_by", "id", "Note", "placed", "total", "primary", "lines", "by_sku", "fixed", "tags", "anon"},
		fieldNames(order.Fields))

	byName := func(name string) Field {
		f, ok := order.Field(name)
		require.True(t, ok, name)

		return f
	}

	assert.True(t, byName("placed").IsScalar())
	assert.True(t, byName("total").IsScalar())
	assert.True(t, byName("tags").IsScalar())

	primary := byName("primary")
	require.NotNil(t, primary.Type)
	assert.Equal(t, "reflectLine", primary.Type.Name)
	assert.Equal(t, ShapeValue, primary.Shape)
	assert.Equal(t, []string{"sku", "qty"}, fieldNames(primary.Type.Fields))

	lines := byName("lines")
	assert.Equal(t, ShapeList, lines.Shape)
	assert.Same(t, primary.Type, lines.Type)

	fixed := byName("fixed")
	assert.Equal(t, ShapeList, fixed.Shape)

	bySKU := byName("by_sku")
	assert.Equal(t, ShapeMap, bySKU.Shape)
	assert.Same(t, primary.Type, bySKU.Type)

	anon := byName("anon")
	require.NotNil(t, anon.Type)
	assert.Equal(t, []string{"x"}, fieldNames(anon.Type.Fields))
	assert.NotEmpty(t, anon.Type.Name)

	assert.True(t, Validate(s).IsValid())
}

func TestFromType_EmbeddedDominance(t *testing.T) {
	s, err := Of(reflectShadowed{})
	require.NoError(t, err)

	// Outer id hides the embedded one, the tagged Label beats the untagged
	// one, and the two kind fields cancel out.
	assert.Equal(t, []string{"Label", "by", "id"}, fieldNames(s.Nodes[0].Fields))
	assert.True(t, Validate(s).IsValid())

	buf, err := json.Marshal(reflectShadowed{ID: 7})
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(buf, &keys))
	assert.ElementsMatch(t, slices.Collect(maps.Keys(keys)), fieldNames(s.Nodes[0].Fields))
}

func TestFromType_SelfEmbedding(t *testing.T) {
	s, err := Of(reflectLoop{})
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, fieldNames(s.Nodes[0].Fields))
}

func TestFromType_Recursive(t *testing.T) {
	s, err := Of(reflectTree{})
	require.NoError(t, err)

	tree := s.Nodes[0]
	children, ok := tree.Field("children")
	require.True(t, ok)
	assert.Same(t, tree, children.Type)
	assert.Equal(t, ShapeList, children.Shape)
}

func TestFromType_NotStruct(t *testing.T) {
	_, err := Of(42)
	assert.ErrorIs(t, err, ErrNotStruct)

	_, err = FromType(nil)
	assert.ErrorIs(t, err, ErrNotStruct)
}
