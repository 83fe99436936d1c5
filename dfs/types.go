package dfs

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = fmt.Errorf("dfs: graph is nil: %w", step.ErrInvalidInput)

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start vertex not found: %w", step.ErrInvalidInput)
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// FilterNeighbor, if non-nil, is called for each neighbor ID before descending.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(id int) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex in the graph,
	// covering disconnected components (forest traversal). Default is false.
	FullTraversal bool
}

// DefaultOptions returns DFSOptions with no filter and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
func WithFilterNeighbor(fn func(id int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, DFS restarts from each unvisited vertex in id order.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they were first visited (pre-order).
	Order []int

	// Finish records vertices in the sequence they finished (post-order).
	Finish []int

	// Depth maps each vertex ID to its depth in the DFS tree.
	Depth map[int]int

	// Parent maps each vertex ID to the ID of the vertex from which it was first discovered.
	// Roots do not appear in this map.
	Parent map[int]int

	// Visited flags which vertices were reached during the traversal.
	Visited map[int]bool
}

func newResult(n int) *DFSResult {
	return &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make(map[int]int, n),
		Parent:  make(map[int]int, n),
		Visited: make(map[int]bool, n),
	}
}

func (o DFSOptions) allow(id int) bool {
	return o.FilterNeighbor == nil || o.FilterNeighbor(id)
}
