package wire

import (
	"errors"
	"fmt"
)

// Wire errors, returned when a value does not fit the schema it is
// translated against.
var (
	ErrValue          = errors.New("wire: value does not match schema")
	ErrShape          = fmt.Errorf("%w: unexpected shape", ErrValue)
	ErrUnknownField   = fmt.Errorf("%w: unknown field", ErrValue)
	ErrUnknownVariant = fmt.Errorf("%w: unknown variant", ErrValue)
)
