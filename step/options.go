package step

import (
	"fmt"
	"log/slog"
	"time"
)

// Speed bounds and defaults.
const (
	MinSpeed     = 1
	MaxSpeed     = 100
	DefaultSpeed = 50
	DefaultUnit  = 10 * time.Millisecond
)

// Option configures a Tracer. Invalid options are recorded and surfaced
// as an error by New.
type Option func(*Options)

// Options holds the tracer configuration.
type Options struct {
	// Handler receives every event; nil drops events.
	Handler Handler

	// Speed ∈ [MinSpeed, MaxSpeed]; delay = (101 − Speed) × Unit.
	Speed int

	// Unit is the length of one delay unit.
	Unit time.Duration

	// Sleeper implements suspension between events.
	Sleeper Sleeper

	// IsCancelled is polled at every checkpoint.
	IsCancelled func() bool

	// Controller, if set, adds pause/resume/cancel and live speed changes.
	Controller *Controller

	// Logger receives a debug record per event; nil uses the context logger.
	Logger *slog.Logger

	// RunID is stamped on every event.
	RunID string

	err error
}

// DefaultOptions returns Options with:
//   - no handler
//   - DefaultSpeed and DefaultUnit
//   - RealSleeper
//   - no cancellation poll and no controller
func DefaultOptions() Options {
	return Options{
		Speed:   DefaultSpeed,
		Unit:    DefaultUnit,
		Sleeper: RealSleeper{},
	}
}

// WithHandler installs the step callback.
func WithHandler(fn Handler) Option {
	return func(o *Options) {
		o.Handler = fn
	}
}

// WithSpeed sets the animation speed.
//
//	1..100: valid
//	other:  ErrInvalidSpeed at New
func WithSpeed(speed int) Option {
	return func(o *Options) {
		if speed < MinSpeed || speed > MaxSpeed {
			o.err = fmt.Errorf("%w: got %d", ErrInvalidSpeed, speed)
			return
		}
		o.Speed = speed
	}
}

// WithUnit sets the duration of one delay unit. Non-positive units are invalid.
func WithUnit(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: delay unit must be positive, got %s", ErrInvalidInput, d)
			return
		}
		o.Unit = d
	}
}

// WithSleeper replaces the suspension strategy.
func WithSleeper(s Sleeper) Option {
	return func(o *Options) {
		if s != nil {
			o.Sleeper = s
		}
	}
}

// WithoutDelay is shorthand for WithSleeper(NoDelay{}).
func WithoutDelay() Option {
	return WithSleeper(NoDelay{})
}

// WithCancel installs a cancellation poll checked before and after every suspension.
func WithCancel(fn func() bool) Option {
	return func(o *Options) {
		o.IsCancelled = fn
	}
}

// WithController attaches a pause/resume/cancel controller.
func WithController(c *Controller) Option {
	return func(o *Options) {
		o.Controller = c
	}
}

// WithLogger sets the logger used for per-event debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithRunID stamps id on every emitted event.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}
