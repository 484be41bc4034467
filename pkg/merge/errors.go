package merge

import (
	"errors"
	"fmt"
)

// Sentinel errors for parameter count mismatches. Match with errors.Is.
var (
	ErrTooManyParameters   = errors.New("too many parameters")
	ErrNotEnoughParameters = errors.New("not enough parameters")
)

// CountError reports a mismatch between placeholders and parameters.
type CountError struct {
	Err          error // ErrTooManyParameters or ErrNotEnoughParameters
	Placeholders int
	Provided     int
	Used         int
}

func (e *CountError) Error() string {
	if errors.Is(e.Err, ErrTooManyParameters) {
		return fmt.Sprintf("%v: provided %d, used %d", e.Err, e.Provided, e.Used)
	}
	return fmt.Sprintf("%v: %d placeholders, %d provided", e.Err, e.Placeholders, e.Provided)
}

func (e *CountError) Unwrap() error {
	return e.Err
}
