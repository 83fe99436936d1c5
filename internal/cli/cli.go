package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/watch"
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// Config is the parsed command line.
type Config struct {
	ScenarioPath string
	RequestPath  string
	Runs         []string // scenario run names to execute; empty means all

	Speed   int // 0 keeps the file's speed
	NoDelay bool

	LogLevel  string
	LogFormat string

	Project  string // jq query applied to every event
	StopWhen string // condition that cancels a run after the matching event
	Dialect  watch.Dialect
}

// Parse processes command-line arguments. It returns the Config, whether
// the program should exit cleanly (help), or an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	fs := flag.NewFlagSet("stepviz", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
stepviz - step-by-step traces of classic algorithms.

Usage:
  stepviz [options] -scenario FILE.hcl
  stepviz [options] -request FILE.json

Every event is printed as one JSON line, followed by one outcome line per run.

Options:
`)
		fs.PrintDefaults()
	}

	scenario := fs.String("scenario", "", "HCL scenario file with one or more run blocks.")
	request := fs.String("request", "", "JSON file holding a single run request.")
	runs := fs.String("run", "", "Comma-separated scenario run names to execute (default all).")
	speed := fs.Int("speed", 0, "Animation speed 1..100 overriding the file (0 keeps it).")
	noDelay := fs.Bool("no-delay", false, "Do not sleep between steps.")
	logLevel := fs.String("log-level", "warn", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	logFormat := fs.String("log-format", "text", "Log output format: 'text' or 'json'.")
	project := fs.String("project", "", "jq query reshaping each event; events yielding nothing are dropped.")
	stopWhen := fs.String("stop-when", "", "Condition that stops a run after the first matching event.")
	dialect := fs.String("dialect", string(watch.DialectExpr), "Condition language for -stop-when: 'expr' or 'cel'.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if *scenario == "" && *request == "" {
		fs.Usage()
		return nil, true, nil
	}
	if *scenario != "" && *request != "" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "use either -scenario or -request, not both"}
	}
	if *runs != "" && *scenario == "" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "-run needs -scenario"}
	}
	if *speed != 0 && (*speed < step.MinSpeed || *speed > step.MaxSpeed) {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("invalid speed %d: must be within 1..100", *speed)}
	}

	format := strings.ToLower(*logFormat)
	if format != "text" && format != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	level := strings.ToLower(*logLevel)
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	d := watch.Dialect(strings.ToLower(*dialect))
	if d != watch.DialectExpr && d != watch.DialectCEL {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid dialect: must be 'expr' or 'cel'"}
	}

	cfg := &Config{
		ScenarioPath: *scenario,
		RequestPath:  *request,
		Speed:        *speed,
		NoDelay:      *noDelay,
		LogLevel:     level,
		LogFormat:    format,
		Project:      *project,
		StopWhen:     *stopWhen,
		Dialect:      d,
	}
	if *runs != "" {
		for _, name := range strings.Split(*runs, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Runs = append(cfg.Runs, name)
			}
		}
	}
	slog.Debug("CLI parser finished successfully.", "config", cfg)

	return cfg, false, nil
}
