package watch

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

func deliver(next step.Handler, ev step.Event) error {
	if next == nil {
		return nil
	}
	return next(ev)
}

// Breakpoint returns a handler that forwards every event to next and pauses
// ctrl after a matching one. The run then stays suspended on that event
// until ctrl.Resume. onHit, if set, sees each matching event.
func Breakpoint(cond Condition, ctrl *step.Controller, next step.Handler, onHit func(step.Event)) step.Handler {
	return func(ev step.Event) error {
		if err := deliver(next, ev); err != nil {
			return err
		}
		hit, err := cond.Match(ev)
		if err != nil {
			return err
		}
		if hit {
			if onHit != nil {
				onHit(ev)
			}
			ctrl.Pause()
		}
		return nil
	}
}

// Until returns a handler that forwards every event to next and cancels the
// run once an event matches. The matching event is the last one delivered.
// A match on the done event ends nothing: the run has already completed.
func Until(cond Condition, next step.Handler) step.Handler {
	return func(ev step.Event) error {
		if err := deliver(next, ev); err != nil {
			return err
		}
		hit, err := cond.Match(ev)
		if err != nil {
			return err
		}
		if hit && ev.Kind != step.KindDone {
			return fmt.Errorf("watch: %s matched at seq %d: %w", cond, ev.Seq, step.ErrCancelled)
		}
		return nil
	}
}

// Project returns a handler that passes the jq outputs of every event to
// sink. Events the query filters out do not reach sink.
func Project(ctx context.Context, p *Projector, sink func(ev step.Event, values []any) error) step.Handler {
	return func(ev step.Event) error {
		values, err := p.Project(ctx, ev)
		if err != nil {
			return err
		}
		if len(values) == 0 {
			return nil
		}
		return sink(ev, values)
	}
}
