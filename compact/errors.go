package compact

import (
	"errors"
	"fmt"

	"github.com/vadim-frolov/serde-compact/schema"
)

// Schema errors, detected when a schema is compacted.
var (
	ErrSchema         = schema.ErrSchema
	ErrDuplicateField = schema.ErrDuplicateField
	ErrEmptyTag       = schema.ErrEmptyTag
)

// Mapping errors, returned when a table is used with names or codes outside
// of its domain.
var (
	ErrMapping      = errors.New("compact: mapping error")
	ErrNameNotFound = fmt.Errorf("%w: name not found", ErrMapping)
	ErrCodeNotFound = fmt.Errorf("%w: code not found", ErrMapping)
	ErrInvalidTable = fmt.Errorf("%w: invalid table", ErrMapping)
	ErrDrift        = fmt.Errorf("%w: schema no longer matches pinned table", ErrMapping)
)
