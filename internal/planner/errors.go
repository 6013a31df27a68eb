package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates the planner was called with inconsistent input.
	// The more specific errors below all wrap it.
	ErrInvalidInput = errors.New("invalid plan input")

	// ErrLengthMismatch indicates the target name list and the item list differ in length.
	ErrLengthMismatch = fmt.Errorf("%w: target names do not match item count", ErrInvalidInput)

	// ErrDuplicateName indicates two items currently share a name.
	ErrDuplicateName = fmt.Errorf("%w: duplicate current name", ErrInvalidInput)

	// ErrNotPermutation indicates the target names are not a permutation of the current names.
	ErrNotPermutation = fmt.Errorf("%w: target names are not a permutation of current names", ErrInvalidInput)

	// ErrTempNameExhausted indicates the TempNamer kept returning names already in use.
	ErrTempNameExhausted = errors.New("could not generate an unused temporary name")
)
