package composer

import (
	"errors"
	"fmt"
)

// ErrInvariant is wrapped by every InvariantError
var ErrInvariant = errors.New("composer invariant violated")

// InvariantError reports a Config the engine refuses to compose from.
// Validated input never produces one; seeing it means a caller bypassed params.Parse.
type InvariantError struct {
	Field  string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvariant, e.Field, e.Reason)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

func invariant(field, format string, args ...any) error {
	return &InvariantError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
