package eval

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInputs is returned when the accuracy input set is empty.
	ErrNoInputs = errors.New("input set must not be empty")
)

// ErrInvalidIterations indicates a non-positive throughput iteration count.
type ErrInvalidIterations struct {
	Iterations int
}

func (e *ErrInvalidIterations) Error() string {
	return fmt.Sprintf("invalid iteration count: %d", e.Iterations)
}

// ErrInvalidRepeats indicates a non-positive repeat count.
type ErrInvalidRepeats struct {
	Repeats int
}

func (e *ErrInvalidRepeats) Error() string {
	return fmt.Sprintf("invalid repeat count: %d", e.Repeats)
}
