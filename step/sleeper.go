package step

import (
	"context"
	"time"
)

// Sleeper suspends a run between two observable events. Implementations
// must return early with a non-nil error when ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a function to the Sleeper interface.
type SleeperFunc func(ctx context.Context, d time.Duration) error

// Sleep calls f(ctx, d).
func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error { return f(ctx, d) }

// RealSleeper waits on a wall-clock timer.
type RealSleeper struct{}

// Sleep blocks for d or until ctx is done.
func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoDelay never waits. Unit tests and batch hosts use it to fast-forward.
type NoDelay struct{}

// Sleep returns ctx.Err() immediately.
func (NoDelay) Sleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }
