package runner

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/petermattis/goid"

	"github.com/katalvlaran/stepviz/step"
)

// Host owns at most one active run at a time and lets another goroutine
// steer it. The zero Host is ready to use.
type Host struct {
	mu     sync.Mutex
	active *Handle
}

// Start validates req and launches it in a new goroutine. It fails with
// ErrBusy while a run is active, or ErrReentrant when called from the
// goroutine executing that run (for example from its step handler).
func (h *Host) Start(ctx context.Context, req Request, handler step.Handler, opts ...step.Option) (*Handle, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if a := h.active; a != nil {
		if a.gid.Load() == goid.Get() {
			return nil, ErrReentrant
		}
		return nil, ErrBusy
	}

	hd := &Handle{
		id:   uuid.NewString(),
		ctrl: step.NewController(),
		done: make(chan struct{}),
	}
	runCtx, stop := hd.ctrl.Bind(ctx)
	all := append(slices.Clone(opts), step.WithRunID(hd.id), step.WithController(hd.ctrl))
	h.active = hd

	go func() {
		defer close(hd.done)
		defer stop()
		hd.gid.Store(goid.Get())
		hd.out, hd.err = Run(runCtx, req, handler, all...)

		h.mu.Lock()
		h.active = nil
		h.mu.Unlock()
	}()

	return hd, nil
}

// Active returns the running Handle, or nil.
func (h *Host) Active() *Handle {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.active
}

// Handle steers one run started by a Host.
type Handle struct {
	id   string
	ctrl *step.Controller
	gid  atomic.Int64
	done chan struct{}
	out  *Outcome
	err  error
}

// RunID returns the id stamped on the run's events and Outcome.
func (hd *Handle) RunID() string { return hd.id }

// Pause suspends the run at its next step.
func (hd *Handle) Pause() { hd.ctrl.Pause() }

// Resume releases a paused run.
func (hd *Handle) Resume() { hd.ctrl.Resume() }

// Paused reports whether the run is paused.
func (hd *Handle) Paused() bool { return hd.ctrl.Paused() }

// Cancel stops the run at its next checkpoint; no event follows it.
func (hd *Handle) Cancel() { hd.ctrl.Cancel() }

// SetSpeed changes the animation speed from the next step on.
func (hd *Handle) SetSpeed(speed int) error { return hd.ctrl.SetSpeed(speed) }

// Done is closed when the run has ended.
func (hd *Handle) Done() <-chan struct{} { return hd.done }

// Wait blocks until the run ends or ctx is done, and returns Run's result.
func (hd *Handle) Wait(ctx context.Context) (*Outcome, error) {
	select {
	case <-hd.done:
		return hd.out, hd.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
