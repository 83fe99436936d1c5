package prim_kruskal

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = fmt.Errorf("prim_kruskal: graph is nil: %w", step.ErrInvalidInput)

// ErrVertexNotFound indicates that the Prim root is not a vertex of the graph.
var ErrVertexNotFound = fmt.Errorf("prim_kruskal: root vertex not found: %w", step.ErrInvalidInput)

// ErrNegativeWeight indicates an edge with negative weight.
var ErrNegativeWeight = fmt.Errorf("prim_kruskal: negative edge weight: %w", step.ErrInvalidInput)

// ErrUnknownMethod indicates an unsupported method name passed to Compute.
var ErrUnknownMethod = fmt.Errorf("prim_kruskal: unknown method: %w", step.ErrInvalidInput)

// ErrDisconnected indicates that the graph is not connected, so no spanning
// tree covers all vertices.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// Method names accepted by Compute.
const (
	MethodPrim       = "prim"
	MethodPrimSimple = "prim-simple"
	MethodKruskal    = "kruskal"
)

// MSTOptions configures the Prim variants. Kruskal ignores it.
type MSTOptions struct {
	// Root is the vertex the tree grows from. Default 0.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithRoot sets the starting vertex for Prim.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions rooted at vertex 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{Root: 0}
}

// Result is a (partial) spanning tree.
//
//   - Edges: tree edges in the order they were added, oriented from the
//     vertex already in the tree (Prim) or as stored in g.Edges() (Kruskal).
//   - Total: sum of edge costs (1 per edge on unweighted graphs).
//   - Order: vertices in the order they joined the tree (Prim variants only).
type Result struct {
	Edges []core.Edge
	Total int64
	Order []int
}

// Compute runs the MST algorithm named by method.
func Compute(ctx context.Context, tr *step.Tracer, g *core.Graph, method string, opts ...Option) (*Result, error) {
	switch method {
	case MethodPrim:
		return Prim(ctx, tr, g, opts...)
	case MethodPrimSimple:
		return PrimSimple(ctx, tr, g, opts...)
	case MethodKruskal:
		return Kruskal(ctx, tr, g)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// validate checks the graph-wide preconditions shared by all methods.
func validate(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d–%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// tree accumulates the spanning tree shared by the three builders.
type tree struct {
	ctx   context.Context
	tr    *step.Tracer
	g     *core.Graph
	in    map[int]bool
	res   *Result
	front func() []int
}

func newTree(ctx context.Context, tr *step.Tracer, g *core.Graph) *tree {
	n := g.NodeCount()
	return &tree{
		ctx: ctx,
		tr:  tr,
		g:   g,
		in:  make(map[int]bool, n),
		res: &Result{Edges: make([]core.Edge, 0, max(n-1, 0))},
	}
}

// join marks id as spanned; Order records join order for Prim.
func (t *tree) join(id int, ordered bool) {
	t.in[id] = true
	if ordered {
		t.res.Order = append(t.res.Order, id)
	}
}

func (t *tree) add(e core.Edge) {
	t.res.Edges = append(t.res.Edges, e)
	t.res.Total += t.g.Cost(e)
}

// complete reports ErrDisconnected when fewer than |V|−1 edges were added.
func (t *tree) complete() error {
	if n := t.g.NodeCount(); n > 0 && len(t.res.Edges) < n-1 {
		return fmt.Errorf("%w: %d of %d edges", ErrDisconnected, len(t.res.Edges), n-1)
	}

	return nil
}

func (t *tree) emit(kind step.Kind, current int, edge *core.Edge, format string, args ...any) error {
	if t.tr == nil {
		return t.tr.Emit(t.ctx, step.Event{})
	}

	return t.tr.Emit(t.ctx, step.Event{
		Kind:  kind,
		Note:  fmt.Sprintf(format, args...),
		Graph: t.state(current, edge),
	})
}

func (t *tree) finish() error {
	if t.tr == nil {
		return t.tr.Finish(t.ctx, step.Event{})
	}

	return t.tr.Finish(t.ctx, step.Event{
		Note:  fmt.Sprintf("tree has %d edges, weight %d", len(t.res.Edges), t.res.Total),
		Graph: t.state(step.None, nil),
	})
}

func (t *tree) state(current int, edge *core.Edge) *step.GraphState {
	var frontier []int
	if t.front != nil {
		frontier = t.front()
	}

	return &step.GraphState{
		Current:  current,
		Edge:     edge,
		Visited:  step.SortedKeys(t.in),
		Frontier: frontier,
		Order:    t.res.Order,
		Tree:     t.res.Edges,
	}
}
