package step

import (
	"context"
	"fmt"
	"sync"
)

// Controller lets a host pause, resume, cancel or re-speed a running
// animation from another goroutine. A zero Controller is not usable; call
// NewController.
type Controller struct {
	mu       sync.Mutex
	paused   bool
	resumeCh chan struct{}
	speed    int

	cancelOnce sync.Once
	done       chan struct{}
}

// NewController returns a running, uncancelled controller.
func NewController() *Controller {
	return &Controller{done: make(chan struct{})}
}

// Pause makes the run block at its next suspension point until Resume or Cancel.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.paused {
		c.paused = true
		c.resumeCh = make(chan struct{})
	}
}

// Resume releases a paused run.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		c.paused = false
		close(c.resumeCh)
	}
}

// Paused reports whether Pause is in effect.
func (c *Controller) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.paused
}

// Cancel stops the run at its next checkpoint. Cancel is idempotent.
func (c *Controller) Cancel() {
	c.cancelOnce.Do(func() { close(c.done) })
}

// Cancelled reports whether Cancel was called.
func (c *Controller) Cancelled() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Done is closed once Cancel is called.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// SetSpeed changes the speed of a running animation from its next suspension on.
func (c *Controller) SetSpeed(speed int) error {
	if speed < MinSpeed || speed > MaxSpeed {
		return fmt.Errorf("%w: got %d", ErrInvalidSpeed, speed)
	}
	c.mu.Lock()
	c.speed = speed
	c.mu.Unlock()

	return nil
}

// Bind returns a child of ctx that is cancelled when the controller is.
// The returned stop func releases the watcher goroutine.
func (c *Controller) Bind(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		select {
		case <-c.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// speedOverride returns the live speed, or 0 when SetSpeed was never called.
func (c *Controller) speedOverride() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.speed
}

// waitResumed blocks while the controller is paused.
func (c *Controller) waitResumed(ctx context.Context) error {
	for {
		c.mu.Lock()
		if !c.paused {
			c.mu.Unlock()
			return nil
		}
		ch := c.resumeCh
		c.mu.Unlock()

		select {
		case <-ch:
		case <-c.done:
			return ErrCancelled
		case <-ctx.Done():
			return ErrCancelled
		}
	}
}
