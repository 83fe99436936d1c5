// Package runner is the single entry point a front end uses to animate an
// algorithm: it maps an Algorithm identifier and its input onto the
// algorithm packages, builds the step.Tracer, and reports an Outcome.
//
// Run executes synchronously on the caller's goroutine. Host wraps Run for
// interactive use: it starts the run in its own goroutine, allows one active
// run at a time, and hands out a Handle to pause, resume, re-speed or cancel
// it. Host detects a Start issued from inside the active run's own
// goroutine (a step handler) and rejects it with ErrReentrant instead of
// deadlocking or nesting runs.
//
// A cancelled run is not an error here: its Outcome has StatusIncomplete,
// the events already delivered stand, and no further event (including the
// done event) follows the cancellation.
//
// Every run gets a UUID run id, stamped on its events, its Outcome and the
// log lines written through the context logger (see ctxlog).
package runner
