package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates an edge from a node to itself was attempted.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge between already-connected nodes was attempted.
	ErrDuplicateEdge = errors.New("core: duplicate edge not allowed")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrFrozen indicates a mutation was attempted while the graph is frozen.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Node is a graph vertex with a layout position.
// X and Y are not algorithmically meaningful except for the A* heuristic.
type Node struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Edge is an undirected connection between From and To.
// In adjacency lists From is always the node whose list holds the edge.
type Edge struct {
	From   int   `json:"from"`
	To     int   `json:"to"`
	Weight int64 `json:"weight"`
}

// Reversed returns the same edge seen from its other endpoint.
func (e Edge) Reversed() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}

// Distance returns the Euclidean distance between the positions of a and b.
func Distance(a, b Node) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is an undirected, optionally weighted graph over dense integer IDs.
//
// mu guards nodes, adj and frozen. adj[id] preserves insertion order.
type Graph struct {
	mu sync.RWMutex

	weighted bool
	frozen   int

	nodes []Node
	adj   [][]Edge
	edges int
}

// NewGraph creates an empty Graph. By default it is unweighted.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether the graph accepts non-zero weights.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}
