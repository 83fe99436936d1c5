package runner

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepviz/ctxlog"
	"github.com/katalvlaran/stepviz/step"
)

// Run executes req to completion or cancellation, delivering every event
// to handler (nil is allowed).
//
// A fresh run id (UUID) is stamped on the tracer unless opts carry
// step.WithRunID. req.Speed, when set, is applied before opts, so an
// explicit step.WithSpeed in opts wins.
//
// Cancellation through ctx, step.WithCancel or a step.Controller is not an
// error: the Outcome has StatusIncomplete and the partial result. Invalid
// requests return a nil Outcome. Other algorithm errors (no path, a
// disconnected graph, a failing handler) are returned together with the
// Outcome built so far.
func Run(ctx context.Context, req Request, handler step.Handler, opts ...step.Option) (*Outcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	base := []step.Option{step.WithRunID(uuid.NewString()), step.WithHandler(handler)}
	if req.Speed != 0 {
		base = append(base, step.WithSpeed(req.Speed))
	}
	tr, err := step.New(append(base, opts...)...)
	if err != nil {
		return nil, err
	}

	logger := ctxlog.FromContext(ctx).With(
		slog.String("run_id", tr.RunID()),
		slog.String("algorithm", string(req.Algorithm)),
	)
	ctx = ctxlog.WithLogger(ctx, logger)

	if req.Graph != nil {
		release := req.Graph.Freeze()
		defer release()
	}

	out := &Outcome{RunID: tr.RunID(), Algorithm: req.Algorithm, Status: StatusCompleted}
	logger.Info("run started", slog.String("family", string(req.Algorithm.Family())), slog.Int("speed", tr.Speed()))

	err = registry[req.Algorithm].run(ctx, tr, req, out)
	out.Steps = tr.Steps()
	if errors.Is(err, step.ErrCancelled) {
		out.Status = StatusIncomplete
		err = nil
	}

	if err != nil {
		logger.Warn("run failed", slog.Int("steps", out.Steps), slog.Any("error", err))
		return out, err
	}
	logger.Info("run finished", slog.String("status", string(out.Status)), slog.Int("steps", out.Steps))

	return out, nil
}
