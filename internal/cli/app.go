package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/ctxlog"
	"github.com/katalvlaran/stepviz/runner"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/watch"
)

// eventLine is printed for every event when no projection is set.
type eventLine struct {
	Run   string     `json:"run,omitempty"`
	Event step.Event `json:"event"`
}

// projectionLine is printed for every projected value.
type projectionLine struct {
	Run   string `json:"run,omitempty"`
	Seq   int    `json:"seq"`
	Value any    `json:"value"`
}

// outcomeLine closes each run.
type outcomeLine struct {
	Run     string          `json:"run,omitempty"`
	Outcome *runner.Outcome `json:"outcome,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// App executes the runs described by a Config, writing JSON lines to out
// and logs to logW.
type App struct {
	cfg  *Config
	out  *json.Encoder
	logW io.Writer

	stop watch.Condition
	proj *watch.Projector
}

// NewApp compiles the watch expressions of cfg.
func NewApp(cfg *Config, out, logW io.Writer) (*App, error) {
	a := &App{cfg: cfg, out: json.NewEncoder(out), logW: logW}
	var err error
	if cfg.StopWhen != "" {
		if a.stop, err = watch.Compile(cfg.Dialect, cfg.StopWhen); err != nil {
			return nil, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
	}
	if cfg.Project != "" {
		if a.proj, err = watch.NewProjector(cfg.Project); err != nil {
			return nil, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
	}

	return a, nil
}

// Run loads the input and executes every selected run in order. A run that
// fails is reported on its outcome line; the remaining runs still execute
// and Run returns an *ExitError summarising the failures.
func (a *App) Run(ctx context.Context) error {
	logger := ctxlog.New(a.cfg.LogLevel, a.cfg.LogFormat, a.logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	runs, err := a.load(ctx)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	var failed []string
	for _, r := range runs {
		if ctx.Err() != nil {
			break
		}
		if err := a.execute(ctx, r); err != nil {
			logger.Error("Run failed", "run", r.Name, "error", err)
			failed = append(failed, r.Name)
		}
	}
	if len(failed) > 0 {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%d run(s) failed: %v", len(failed), failed)}
	}

	return nil
}

func (a *App) load(ctx context.Context) ([]config.Run, error) {
	if a.cfg.RequestPath != "" {
		req, err := config.LoadRequestFile(a.cfg.RequestPath)
		if err != nil {
			return nil, err
		}
		return []config.Run{{Request: req}}, nil
	}

	sc, err := config.LoadScenario(ctx, a.cfg.ScenarioPath)
	if err != nil {
		return nil, err
	}
	if len(a.cfg.Runs) == 0 {
		return sc.Runs, nil
	}
	var selected []config.Run
	for _, name := range a.cfg.Runs {
		i := slices.IndexFunc(sc.Runs, func(r config.Run) bool { return r.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("scenario has no run %q", name)
		}
		selected = append(selected, sc.Runs[i])
	}

	return selected, nil
}

func (a *App) execute(ctx context.Context, r config.Run) error {
	req := r.Request
	if a.cfg.Speed != 0 {
		req.Speed = a.cfg.Speed
	}
	var opts []step.Option
	if a.cfg.NoDelay {
		opts = append(opts, step.WithoutDelay())
	}

	out, err := runner.Run(ctx, req, a.handler(ctx, r.Name), opts...)
	line := outcomeLine{Run: r.Name, Outcome: out}
	if err != nil {
		line.Error = err.Error()
	}
	if encErr := a.out.Encode(line); encErr != nil {
		return errors.Join(err, encErr)
	}

	return err
}

// handler prints events (or their projections) and applies -stop-when.
func (a *App) handler(ctx context.Context, run string) step.Handler {
	var h step.Handler = func(ev step.Event) error {
		return a.out.Encode(eventLine{Run: run, Event: ev})
	}
	if a.proj != nil {
		h = watch.Project(ctx, a.proj, func(ev step.Event, values []any) error {
			for _, v := range values {
				if err := a.out.Encode(projectionLine{Run: run, Seq: ev.Seq, Value: v}); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if a.stop != nil {
		h = watch.Until(a.stop, h)
	}

	return h
}
