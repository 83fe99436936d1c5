package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/stepviz/step"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = fmt.Errorf("dijkstra: graph is nil: %w", step.ErrInvalidInput)

	// ErrVertexNotFound indicates that the source or goal vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = fmt.Errorf("dijkstra: vertex not found in graph: %w", step.ErrInvalidInput)

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = fmt.Errorf("dijkstra: negative edge weight encountered: %w", step.ErrInvalidInput)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = fmt.Errorf("dijkstra: MaxDistance must be non-negative: %w", step.ErrInvalidInput)

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would make every edge impassable.
	ErrBadInfThreshold = fmt.Errorf("dijkstra: InfEdgeThreshold must be positive: %w", step.ErrInvalidInput)

	// ErrNoPath is returned by Result.PathTo for a vertex that was not reached.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Goal             – optional target; step.None explores everything reachable.
// MaxDistance      – cap on distances to explore. Default math.MaxInt64.
// InfEdgeThreshold – edges with weight ≥ threshold are impassable. Default math.MaxInt64.
type Options struct {
	Goal             int
	MaxDistance      int64
	InfEdgeThreshold int64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns an Options struct with:
//   - Goal:             step.None
//   - MaxDistance:      math.MaxInt64 (no distance limit)
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable)
func DefaultOptions() Options {
	return Options{
		Goal:             step.None,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// WithGoal stops the search once goal is finalized and records the path to it.
func WithGoal(goal int) Option {
	return func(o *Options) {
		o.Goal = goal
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values surface ErrBadMaxDistance when Dijkstra runs.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are non-traversable. Non-positive values surface ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// Result holds shortest-path distances from Source.
//
//   - Dist:  vertex → distance; unreachable vertices are absent.
//   - Prev:  vertex → predecessor on a shortest path.
//   - Order: vertices in finalization order.
//   - Path:  Source → Goal when a goal was set and reached.
type Result struct {
	Source int
	Dist   map[int]int64
	Prev   map[int]int
	Order  []int
	Path   []int
}

// PathTo rebuilds the shortest path from Source to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	var path []int
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
