package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Sentinel errors for A*.
var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = fmt.Errorf("astar: graph is nil: %w", step.ErrInvalidInput)

	// ErrVertexNotFound is returned when start or goal is absent.
	ErrVertexNotFound = fmt.Errorf("astar: vertex not found: %w", step.ErrInvalidInput)

	// ErrNegativeWeight is returned when some edge weight is negative.
	ErrNegativeWeight = fmt.Errorf("astar: negative edge weight: %w", step.ErrInvalidInput)

	// ErrBadHeuristicScale is returned for a negative or NaN scale.
	ErrBadHeuristicScale = fmt.Errorf("astar: heuristic scale must be non-negative: %w", step.ErrInvalidInput)

	// ErrNoPath is returned when the goal cannot be reached from start.
	ErrNoPath = errors.New("astar: no path")
)

// DefaultHeuristicScale converts canvas distance into builder weight units.
const DefaultHeuristicScale = 0.1

// Options configures A*.
type Options struct {
	// HeuristicScale multiplies the Euclidean distance to the goal.
	HeuristicScale float64

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with DefaultHeuristicScale.
func DefaultOptions() Options {
	return Options{HeuristicScale: DefaultHeuristicScale}
}

// WithHeuristicScale sets the heuristic multiplier. Zero turns A* into
// uniform-cost search.
func WithHeuristicScale(scale float64) Option {
	return func(o *Options) {
		if scale < 0 || scale != scale {
			o.err = fmt.Errorf("%w: got %v", ErrBadHeuristicScale, scale)
			return
		}
		o.HeuristicScale = scale
	}
}

// Result describes a finished (or cancelled) search.
//
//   - Path:   start → goal, nil if the goal was not reached.
//   - Cost:   sum of edge costs along Path.
//   - G:      best known cost from start per discovered vertex.
//   - Parent: predecessor of each discovered vertex except start.
//   - Closed: vertices in the order they were popped.
type Result struct {
	Start, Goal int
	Path        []int
	Cost        int64
	G           map[int]int64
	Parent      map[int]int
	Closed      []int
}
