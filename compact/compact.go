package compact

import (
	"fmt"

	"github.com/vadim-frolov/serde-compact/schema"
)

// Compact validates s, collects its wire names and assigns each a code.
func Compact(s *schema.Schema) (*Table, error) {
	names, err := Collect(s)
	if err != nil {
		return nil, fmt.Errorf("compacting schema: %w", err)
	}

	return newTable(Assign(names), schema.Fingerprint(s)), nil
}

// MustCompact is like Compact but panics on a malformed schema. It is meant
// for schemas declared as package-level variables.
func MustCompact(s *schema.Schema) *Table {
	t, err := Compact(s)
	if err != nil {
		panic(err)
	}

	return t
}
