package table

import (
	"errors"
	"fmt"
)

// ErrMissingResource is matched by every MissingResourceError.
var ErrMissingResource = errors.New("missing resource")

// MissingResourceError reports an input file that does not exist.
type MissingResourceError struct {
	Path string
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

func (e *MissingResourceError) Unwrap() error {
	return ErrMissingResource
}

// CellError reports a duration cell that could not be transformed. Row and
// Column are zero-based indexes into Table.Rows and Table.Header.
type CellError struct {
	Row        int
	Column     int
	Identifier string
	Header     string
	Text       string
	Err        error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d (%s), column '%s': cell %q: %v", e.Row+1, e.Identifier, e.Header, e.Text, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
