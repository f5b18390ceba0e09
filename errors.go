package spritemesh

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks geometry or parameters rejected before any
	// welding work is done.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNumericOverflow marks results that do not fit the 16-bit index
	// type sprites use for triangles.
	ErrNumericOverflow = errors.New("numeric overflow")
)

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func overflowf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNumericOverflow, fmt.Sprintf(format, args...))
}
