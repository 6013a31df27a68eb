package engine

import (
	"errors"
	"fmt"

	"github.com/Juliapixel/emote-shuffler/internal/planner"
)

var (
	// ErrIncomplete indicates a run stopped before applying every operation.
	ErrIncomplete = errors.New("shuffle incomplete")

	// ErrInvalidRate indicates a non-positive rename rate.
	ErrInvalidRate = errors.New("rate must be positive")

	// ErrNoTarget indicates neither a username nor a set id was given.
	ErrNoTarget = errors.New("no username or emote set id given")
)

// StepError reports the operation a run stopped at. Operations before Index
// were applied; Index and everything after it were not.
type StepError struct {
	// Index is the zero-based position of the failed operation
	Index int

	// Total is the number of operations in the run
	Total int

	// Op is the operation that failed
	Op planner.Operation

	// Err is the underlying failure
	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d/%d (rename %s to %q) failed: %v", e.Index+1, e.Total, e.Op.TargetID, e.Op.NewName, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Is makes every StepError match ErrIncomplete.
func (e *StepError) Is(target error) bool {
	return target == ErrIncomplete
}
