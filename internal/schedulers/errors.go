package schedulers

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for an empty process set or a process with
	// out-of-range fields. No process is mutated when it is returned.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidParameter is returned for a non-positive time quantum or an
	// unknown algorithm name.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// ValidationError describes a single rejected process.
type ValidationError struct {
	Index     int
	ProcessId int
	Field     string
	Err       error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: process %d (index %d): %s: %v", ErrInvalidInput, e.ProcessId, e.Index, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
