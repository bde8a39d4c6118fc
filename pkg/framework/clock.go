package framework

import (
	"context"
	"time"
)

// SystemClock is the Clock backed by the wall clock.
// time.Now carries a monotonic reading, so differences between
// two Time() values are not affected by wall clock adjustments.
type SystemClock struct{}

// Time implements TimeSource.
func (SystemClock) Time() time.Time {
	return time.Now()
}

// Sleep implements Clock.
func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Rate keeps a loop running at a fixed frequency.
// The first tick boundary is one period after NewRate.
type Rate struct {
	Clock  Clock
	Period time.Duration

	next time.Time
}

// NewRate creates a Rate ticking at hz with the given clock.
func NewRate(clock Clock, hz float64) *Rate {
	period := time.Duration(float64(time.Second) / hz)
	return &Rate{
		Clock:  clock,
		Period: period,
		next:   clock.Time().Add(period),
	}
}

// Sleep sleeps until the next tick boundary. If the loop body overran
// the boundary, the schedule restarts from now instead of firing a
// burst of catch-up ticks.
func (r *Rate) Sleep(ctx context.Context) error {
	now := r.Clock.Time()
	wait := r.next.Sub(now)
	if wait <= 0 {
		r.next = now.Add(r.Period)
		return ctx.Err()
	}
	r.next = r.next.Add(r.Period)
	return r.Clock.Sleep(ctx, wait)
}
