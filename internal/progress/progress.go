// Package progress reports how far a rename run has come.
//
// A Reporter is purely observational: the executor calls Start once, Update after
// every applied rename and Finish on every exit path. Bar renders a live terminal
// line with an estimated time to completion; Nop discards everything.
package progress

import (
	"time"
)

// Reporter receives progress for a single run.
type Reporter interface {
	// Start is called once before the first operation.
	Start(total int)

	// Update is called after each successful operation.
	Update(s Snapshot)

	// Finish is called exactly once when the run ends, with the error that ended it, if any.
	Finish(err error)
}

// Snapshot is the state of a run after an operation completed.
type Snapshot struct {
	// Completed is the number of operations applied so far
	Completed int

	// Total is the number of operations in the run
	Total int

	// Elapsed is the time since the run started
	Elapsed time.Duration
}

// Remaining returns the number of operations still to apply.
func (s Snapshot) Remaining() int {
	if s.Completed >= s.Total {
		return 0
	}
	return s.Total - s.Completed
}

// Fraction returns completion in the range [0, 1].
func (s Snapshot) Fraction() float64 {
	if s.Total <= 0 {
		return 1
	}
	f := float64(s.Completed) / float64(s.Total)
	if f > 1 {
		return 1
	}
	return f
}

// ETA estimates the time left from the average duration of completed operations.
// It is zero until at least one operation completed.
func (s Snapshot) ETA() time.Duration {
	if s.Completed <= 0 {
		return 0
	}
	perOp := s.Elapsed / time.Duration(s.Completed)
	return perOp * time.Duration(s.Remaining())
}

// Nop is a Reporter that ignores all progress.
type Nop struct{}

func (Nop) Start(int)       {}
func (Nop) Update(Snapshot) {}
func (Nop) Finish(error)    {}
