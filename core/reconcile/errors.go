package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyNew is returned when the new snapshot input has zero length.
	// It is terminal: no classification is produced.
	ErrEmptyNew = errors.New("new database blank")

	// ErrMalformedRow matches rows rejected by strict column checking.
	ErrMalformedRow = errors.New("malformed row")
)

// MalformedRowError reports a row whose token count differs from the first row.
type MalformedRowError struct {
	Line int
	Key  string
	Want int
	Got  int
}

// Error implements the error interface
func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d (key %q): expected %d columns, got %d", e.Line, e.Key, e.Want, e.Got)
}

// Is implements errors.Is support
func (e *MalformedRowError) Is(target error) bool {
	return target == ErrMalformedRow
}
