package engine

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/Juliapixel/emote-shuffler/internal/clock"
	"github.com/Juliapixel/emote-shuffler/internal/planner"
	"github.com/Juliapixel/emote-shuffler/internal/progress"
)

// RenameFunc applies a single rename on the remote side.
type RenameFunc func(ctx context.Context, op planner.Operation) error

// Executor applies a rename plan one operation at a time at a bounded rate.
// Operations are never issued concurrently: each one relies on the name it
// targets having been released by the operation before it.
type Executor struct {
	clock    clock.Clock
	interval time.Duration
	sink     progress.Reporter
	logger   zerolog.Logger
}

// NewExecutor creates an Executor that starts at most rate operations per minute.
func NewExecutor(clk clock.Clock, rate float64, sink progress.Reporter, logger zerolog.Logger) (*Executor, error) {
	if err := ValidateRate(rate); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = progress.Nop{}
	}
	return &Executor{
		clock:    clk,
		interval: intervalForRate(rate),
		sink:     sink,
		logger:   logger,
	}, nil
}

// Interval returns the minimum spacing between operation starts.
func (x *Executor) Interval() time.Duration {
	return x.interval
}

// Run applies ops in order and returns how many were applied.
//
// The first failure stops the run and is returned as a *StepError; nothing is
// retried or rolled back. The progress sink is finished on every return path.
func (x *Executor) Run(ctx context.Context, ops []planner.Operation, rename RenameFunc) (applied int, err error) {
	total := len(ops)
	x.sink.Start(total)
	defer func() {
		// the sink ends its line first so the log does not land on it
		x.sink.Finish(err)
		var stepErr *StepError
		if errors.As(err, &stepErr) {
			x.logger.Error().
				Err(stepErr.Err).
				Int("step", stepErr.Index+1).
				Str("emote", stepErr.Op.TargetID).
				Msg("run stopped")
		}
	}()

	pace := newPacer(x.clock, x.interval)
	start := x.clock.Now()

	for i, op := range ops {
		if err := pace.Wait(ctx); err != nil {
			return applied, &StepError{Index: i, Total: total, Op: op, Err: err}
		}

		x.logger.Debug().
			Int("step", i+1).
			Int("total", total).
			Bool("temporary", op.Temporary).
			Msgf("renaming %s to %s", op.TargetID, op.NewName)

		if err := rename(ctx, op); err != nil {
			return applied, &StepError{Index: i, Total: total, Op: op, Err: err}
		}
		applied++

		x.sink.Update(progress.Snapshot{
			Completed: applied,
			Total:     total,
			Elapsed:   x.clock.Now().Sub(start),
		})
	}

	return applied, nil
}
