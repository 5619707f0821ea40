package duration

import (
	"errors"
	"fmt"
)

// ErrInvalidDuration is matched by every error returned from Parse.
var ErrInvalidDuration = errors.New("invalid duration")

// ParseError reports text that is not a valid duration. Input carries the
// offending text verbatim for diagnostics.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid duration %q: %s", e.Input, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidDuration.
func (e *ParseError) Unwrap() error {
	return ErrInvalidDuration
}
