package compact

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vadim-frolov/serde-compact/internal/common"
	"github.com/vadim-frolov/serde-compact/internal/diagnostic"
	"github.com/vadim-frolov/serde-compact/schema"
)

const lockVersion = "1"

// LockFile pins a table so that the wire format can be reviewed and checked
// for drift when the schema changes.
//
//	version: "1"
//	fingerprint: 5x3kq2ab
//	codes:
//	  - name: CancelEventReservation
//	    code: a
//	  - name: ConfirmEventReservation
//	    code: b
type LockFile struct {
	Version     string       `yaml:"version"`
	Fingerprint string       `yaml:"fingerprint,omitempty"`
	Codes       []Assignment `yaml:"codes"`
}

// Lock returns the lock file describing t.
func (t *Table) Lock() *LockFile {
	return &LockFile{
		Version:     lockVersion,
		Fingerprint: t.fingerprint,
		Codes:       t.Assignments(),
	}
}

// ExportYAML serializes t as a YAML lock file.
func ExportYAML(t *Table) ([]byte, error) {
	return yaml.Marshal(t.Lock())
}

// WriteLockFile writes t as a YAML lock file to the given path.
func WriteLockFile(t *Table, path string) error {
	data, err := ExportYAML(t)
	if err != nil {
		return fmt.Errorf("failed to marshal lock file: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write lock file %s: %w", path, err)
	}

	return nil
}

// ParseLock parses a YAML lock file into a table.
func ParseLock(data []byte) (*Table, error) {
	var lf LockFile

	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("failed to parse lock file YAML: %w", err)
	}

	if lf.Version != "" && lf.Version != lockVersion {
		return nil, fmt.Errorf("%w: unsupported lock file version %q", ErrInvalidTable, lf.Version)
	}

	t, err := NewTable(lf.Codes)
	if err != nil {
		return nil, err
	}

	t.fingerprint = lf.Fingerprint

	return t, nil
}

// LoadLockFile loads a YAML lock file from the given path.
func LoadLockFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lock file %s: %w", path, err)
	}

	return ParseLock(data)
}

// Verify compacts s and compares the result with the pinned table. It
// returns an error matching ErrDrift that lists every added, removed or
// re-coded name, the schema error if s is malformed, or ErrInvalidTable if
// pinned is nil.
func Verify(s *schema.Schema, pinned *Table) error {
	if pinned == nil {
		return fmt.Errorf("%w: no pinned table", ErrInvalidTable)
	}

	current, err := Compact(s)
	if err != nil {
		return err
	}

	res := &diagnostic.Diagnostics{}

	for _, name := range common.SortedKeys(current.codes) {
		code := current.codes[name]

		old, ok := pinned.codes[name]
		switch {
		case !ok:
			res.AddError("name_added", ErrDrift, fmt.Sprintf("new name would get code %q", code), "", name)
		case old != code:
			res.AddError("code_changed", ErrDrift, fmt.Sprintf("code changed from %q to %q", old, code), "", name)
		}
	}

	for _, name := range common.SortedKeys(pinned.codes) {
		if _, ok := current.codes[name]; !ok {
			res.AddError("name_removed", ErrDrift, fmt.Sprintf("pinned code %q is no longer used", pinned.codes[name]), "", name)
		}
	}

	return res.Error()
}
