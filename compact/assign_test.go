package compact

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeAt(t *testing.T) {
	tests := []struct {
		index int
		code  string
	}{
		{0, "a"},
		{1, "b"},
		{25, "z"},
		{26, "aa"},
		{27, "ab"},
		{51, "az"},
		{52, "ba"},
		{701, "zz"},
		{702, "aaa"},
		{18277, "zzz"},
		{18278, "aaaa"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, CodeAt(tt.index))

			idx, ok := IndexOf(tt.code)
			assert.True(t, ok)
			assert.Equal(t, tt.index, idx)
		})
	}
}

func TestCodeAt_UniqueAndShortestFirst(t *testing.T) {
	seen := make(map[string]struct{})
	prevLen := 0

	for i := range 20000 {
		code := CodeAt(i)

		_, dup := seen[code]
		assert.False(t, dup, "code %q repeated at %d", code, i)
		seen[code] = struct{}{}

		assert.GreaterOrEqual(t, len(code), prevLen)
		prevLen = len(code)
	}
}

func TestCodeAt_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { CodeAt(-1) })
}

func TestCodeAt_MaxInt(t *testing.T) {
	if strconv.IntSize != 64 {
		t.Skip("expects 64-bit int")
	}

	assert.Equal(t, "crpxnlskvljfhh", CodeAt(math.MaxInt))

	idx, ok := IndexOf("crpxnlskvljfhh")
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt, idx)

	// One past math.MaxInt, and values that overflow uint64.
	for _, code := range []string{"crpxnlskvljfhi", "zzzzzzzzzzzzzz", strings.Repeat("a", 40)} {
		_, ok := IndexOf(code)
		assert.False(t, ok, code)
	}
}

func TestIndexOf_Invalid(t *testing.T) {
	for _, code := range []string{"", "A", "a0", "ab-"} {
		_, ok := IndexOf(code)
		assert.False(t, ok, code)
	}
}

func TestAssign(t *testing.T) {
	names := []string{"user_id", "event_id", "ConfirmEventReservation", "ticket_type", "CancelEventReservation"}

	got := Assign(names)
	assert.Equal(t, []Assignment{
		{Name: "CancelEventReservation", Code: "a"},
		{Name: "ConfirmEventReservation", Code: "b"},
		{Name: "event_id", Code: "c"},
		{Name: "ticket_type", Code: "d"},
		{Name: "user_id", Code: "e"},
	}, got)

	// Input is left untouched.
	assert.Equal(t, "user_id", names[0])
}

func TestAssign_Empty(t *testing.T) {
	assert.Empty(t, Assign(nil))
}

func TestAssign_ByteWiseOrder(t *testing.T) {
	got := Assign([]string{"b", "B", "a", "_x", "Z"})

	var names []string
	for _, a := range got {
		names = append(names, a.Name)
	}

	assert.Equal(t, []string{"B", "Z", "_x", "a", "b"}, names)
}
