package compact

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Table is the finished mapping between names and codes for one schema.
// It is immutable and safe for concurrent use.
type Table struct {
	assignments []Assignment // sorted by name
	codes       map[string]string
	names       map[string]string
	fingerprint string
}

func newTable(assignments []Assignment, fingerprint string) *Table {
	t := &Table{
		assignments: slices.Clone(assignments),
		codes:       make(map[string]string, len(assignments)),
		names:       make(map[string]string, len(assignments)),
		fingerprint: fingerprint,
	}

	slices.SortFunc(t.assignments, func(a, b Assignment) int {
		return strings.Compare(a.Name, b.Name)
	})

	for _, a := range t.assignments {
		t.codes[a.Name] = a.Code
		t.names[a.Code] = a.Name
	}

	return t
}

// NewTable builds a table from explicit assignments, e.g. ones read back from
// a lock file. Codes need not follow the CodeAt sequence, but names and codes
// must be non-empty and unique.
func NewTable(assignments []Assignment) (*Table, error) {
	names := make(map[string]struct{}, len(assignments))
	codes := make(map[string]struct{}, len(assignments))

	for _, a := range assignments {
		if a.Name == "" || a.Code == "" {
			return nil, fmt.Errorf("%w: empty name or code in %+v", ErrInvalidTable, a)
		}

		if _, ok := names[a.Name]; ok {
			return nil, fmt.Errorf("%w: name %q assigned twice", ErrInvalidTable, a.Name)
		}

		if _, ok := codes[a.Code]; ok {
			return nil, fmt.Errorf("%w: code %q assigned twice", ErrInvalidTable, a.Code)
		}

		names[a.Name] = struct{}{}
		codes[a.Code] = struct{}{}
	}

	return newTable(assignments, ""), nil
}

// CodeFor returns the code assigned to name.
func (t *Table) CodeFor(name string) (string, error) {
	code, ok := t.codes[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}

	return code, nil
}

// NameFor returns the name the code was assigned to.
func (t *Table) NameFor(code string) (string, error) {
	name, ok := t.names[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrCodeNotFound, code)
	}

	return name, nil
}

// Len returns the number of names in the table.
func (t *Table) Len() int {
	return len(t.assignments)
}

// Names returns all names in byte-wise order.
func (t *Table) Names() []string {
	names := make([]string, len(t.assignments))
	for i, a := range t.assignments {
		names[i] = a.Name
	}

	return names
}

// Assignments returns a copy of the name/code pairs ordered by name.
func (t *Table) Assignments() []Assignment {
	return slices.Clone(t.assignments)
}

// All iterates over name/code pairs ordered by name.
func (t *Table) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, a := range t.assignments {
			if !yield(a.Name, a.Code) {
				return
			}
		}
	}
}

// Fingerprint returns the fingerprint of the schema the table was compacted
// from, or the one recorded in its lock file. It is empty for tables built
// with NewTable.
func (t *Table) Fingerprint() string {
	return t.fingerprint
}

// Equal reports whether both tables hold the same name/code pairs.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}

	return slices.Equal(t.assignments, other.assignments)
}

// String renders the table as "name=code" pairs ordered by name.
func (t *Table) String() string {
	parts := make([]string, len(t.assignments))
	for i, a := range t.assignments {
		parts[i] = a.Name + "=" + a.Code
	}

	return "{" + strings.Join(parts, " ") + "}"
}
