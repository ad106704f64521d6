package schema

import (
	"errors"
	"fmt"
)

// Schema errors
var (
	ErrSchema         = errors.New("schema: malformed schema")
	ErrDuplicateField = fmt.Errorf("%w: duplicate field", ErrSchema)
	ErrEmptyTag       = fmt.Errorf("%w: empty tag", ErrSchema)
	ErrUnknownType    = fmt.Errorf("%w: unknown type", ErrSchema)
	ErrDuplicateType  = fmt.Errorf("%w: duplicate type", ErrSchema)
	ErrNotStruct      = fmt.Errorf("%w: not a struct type", ErrSchema)
)
