package dtype

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCast is returned by Cast when the two types share no
	// fixed-width representation. Supply a scratch value to CastWith
	// instead; that form always succeeds.
	ErrUnsupportedCast = errors.New("unsupported cast: no shared fixed-width representation")
)

// ErrDuplicateType indicates a Register call with an already-taken name.
type ErrDuplicateType struct {
	TypeName string
}

func (e *ErrDuplicateType) Error() string {
	return fmt.Sprintf("sample type already registered: %q", e.TypeName)
}
