package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Juliapixel/emote-shuffler/internal/clock"
)

// pacer spaces operation starts at least interval apart. It measures from the
// last start rather than from a fixed schedule, so a slow operation never leaves
// a backlog of ticks that would fire back to back.
type pacer struct {
	clock    clock.Clock
	interval time.Duration
	last     time.Time
	started  bool
}

func newPacer(clk clock.Clock, interval time.Duration) *pacer {
	return &pacer{clock: clk, interval: interval}
}

// minRate is the slowest rate whose interval still fits in a time.Duration.
const minRate = float64(time.Minute) / math.MaxInt64

// ValidateRate rejects rates that cannot be turned into a positive interval:
// NaN, infinities, non-positive values and rates so slow the interval overflows.
func ValidateRate(perMinute float64) error {
	if math.IsNaN(perMinute) || math.IsInf(perMinute, 0) || perMinute <= minRate {
		return fmt.Errorf("%w: %v", ErrInvalidRate, perMinute)
	}
	return nil
}

// intervalForRate converts operations per minute to the spacing between starts.
// perMinute must have passed ValidateRate.
func intervalForRate(perMinute float64) time.Duration {
	return time.Duration(float64(time.Minute) / perMinute)
}

// Wait blocks until the next operation may start and records that start.
// The first call returns immediately.
func (p *pacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.started {
		if remaining := p.interval - p.clock.Now().Sub(p.last); remaining > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-p.clock.After(remaining):
			}
		}
	}
	p.started = true
	p.last = p.clock.Now()
	return nil
}
