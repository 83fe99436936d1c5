package step

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/stepviz/ctxlog"
)

// Tracer drives one animated run. It is created per run and is safe to
// observe (Steps, Delay) from other goroutines; Emit itself must only be
// called from the algorithm's goroutine.
type Tracer struct {
	opts  Options
	seq   atomic.Int64
	speed atomic.Int64
}

// New builds a Tracer from opts. The first invalid option wins.
func New(opts ...Option) (*Tracer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			return nil, o.err
		}
	}
	t := &Tracer{opts: o}
	t.speed.Store(int64(o.Speed))

	return t, nil
}

// MustNew is New that panics on an invalid option. Intended for tests and examples.
func MustNew(opts ...Option) *Tracer {
	t, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return t
}

// RunID returns the identifier stamped on events.
func (t *Tracer) RunID() string {
	if t == nil {
		return ""
	}

	return t.opts.RunID
}

// Steps returns the number of events emitted so far.
func (t *Tracer) Steps() int {
	if t == nil {
		return 0
	}

	return int(t.seq.Load())
}

// Speed returns the effective speed, honouring Controller.SetSpeed.
func (t *Tracer) Speed() int {
	if t == nil {
		return DefaultSpeed
	}
	if c := t.opts.Controller; c != nil {
		if s := c.speedOverride(); s != 0 {
			return s
		}
	}

	return int(t.speed.Load())
}

// Delay returns the suspension applied after each event.
func (t *Tracer) Delay() time.Duration {
	unit := DefaultUnit
	if t != nil {
		unit = t.opts.Unit
	}

	return DelayFor(t.Speed(), unit)
}

// DelayFor computes (101 − speed) × unit.
func DelayFor(speed int, unit time.Duration) time.Duration {
	return time.Duration(MaxSpeed+1-speed) * unit
}

// Emit publishes ev and suspends the caller. It returns ErrCancelled when
// the run was cancelled before or during suspension, and a wrapped error
// when the handler fails. On a nil Tracer only the context is checked.
// A nil ctx is treated as context.Background().
func (t *Tracer) Emit(ctx context.Context, ev Event) error {
	if t == nil {
		return ctxCheck(ctx)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := t.checkpoint(ctx); err != nil {
		return err
	}
	if err := t.publish(ctx, ev); err != nil {
		return err
	}
	if err := t.suspend(ctx); err != nil {
		return err
	}

	return t.checkpoint(ctx)
}

// Finish emits the single KindDone event of a completed run. It does not
// suspend: nothing follows it.
func (t *Tracer) Finish(ctx context.Context, ev Event) error {
	if t == nil {
		return ctxCheck(ctx)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := t.checkpoint(ctx); err != nil {
		return err
	}
	ev.Kind = KindDone

	return t.publish(ctx, ev)
}

func (t *Tracer) publish(ctx context.Context, ev Event) error {
	seq := t.seq.Add(1)
	snap := ev.Clone()
	snap.Seq = int(seq)
	snap.RunID = t.opts.RunID

	t.logger(ctx).Debug("step", "run", snap.RunID, "seq", snap.Seq, "kind", string(snap.Kind))

	if t.opts.Handler == nil {
		return nil
	}
	if err := t.opts.Handler(snap); err != nil {
		if errors.Is(err, ErrCancelled) {
			return ErrCancelled
		}
		return fmt.Errorf("step: handler failed at seq %d: %w", snap.Seq, err)
	}

	return nil
}

func (t *Tracer) suspend(ctx context.Context) error {
	if err := t.opts.Sleeper.Sleep(ctx, t.Delay()); err != nil {
		if ctx.Err() != nil {
			return ErrCancelled
		}
		return fmt.Errorf("step: sleep: %w", err)
	}
	if c := t.opts.Controller; c != nil {
		return c.waitResumed(ctx)
	}

	return nil
}

func (t *Tracer) checkpoint(ctx context.Context) error {
	if err := ctxCheck(ctx); err != nil {
		return err
	}
	if t.opts.IsCancelled != nil && t.opts.IsCancelled() {
		return ErrCancelled
	}
	if c := t.opts.Controller; c != nil && c.Cancelled() {
		return ErrCancelled
	}

	return nil
}

func (t *Tracer) logger(ctx context.Context) *slog.Logger {
	if t.opts.Logger != nil {
		return t.opts.Logger
	}

	return ctxlog.FromContext(ctx)
}

func ctxCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ErrCancelled
	}

	return nil
}
