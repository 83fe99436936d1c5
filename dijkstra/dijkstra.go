package dijkstra

import (
	"cmp"
	"container/heap"
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// Dijkstra computes shortest distances from source to every reachable
// vertex of g, reporting each heap operation and relaxation to tr.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  3. g must contain source and, if set, the goal (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// On cancellation the partial Result is returned with step.ErrCancelled.
func Dijkstra(ctx context.Context, tr *step.Tracer, g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}
	if cfg.Goal != step.None && !g.HasNode(cfg.Goal) {
		return nil, fmt.Errorf("%w: goal %d", ErrVertexNotFound, cfg.Goal)
	}

	release := g.Freeze()
	defer release()

	// Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if g.Cost(e) < 0 {
			return nil, fmt.Errorf("%w: edge %d–%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	n := g.NodeCount()
	r := &runner{
		ctx:     ctx,
		tr:      tr,
		g:       g,
		options: cfg,
		visited: make(map[int]bool, n),
		pq:      make(nodePQ, 0, n),
		res: &Result{
			Source: source,
			Dist:   make(map[int]int64, n),
			Prev:   make(map[int]int, n),
			Order:  make([]int, 0, n),
		},
	}

	if err := r.init(); err != nil {
		return r.res, err
	}
	if err := r.process(); err != nil {
		return r.res, err
	}

	return r.res, r.finish()
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	ctx     context.Context
	tr      *step.Tracer
	g       *core.Graph
	options Options
	visited map[int]bool
	pq      nodePQ
	seq     int
	res     *Result
}

// init sets dist[source] = 0 and pushes the source onto the heap.
func (r *runner) init() error {
	src := r.res.Source
	r.res.Dist[src] = 0
	heap.Init(&r.pq)
	r.push(src, 0)

	return r.emit(step.KindPush, src, nil, "push source %d", src)
}

func (r *runner) push(id int, dist int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// process repeatedly extracts the closest vertex and relaxes its edges.
// It stops when the heap is empty, the goal is finalized, or the next
// distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if err := r.emit(step.KindPop, u, nil, "pop %d (d=%d)", u, item.dist); err != nil {
			return err
		}
		if r.visited[u] {
			if err := r.emit(step.KindSkip, u, nil, "stale entry for %d", u); err != nil {
				return err
			}
			continue
		}
		if item.dist > r.options.MaxDistance {
			return nil
		}

		r.visited[u] = true
		r.res.Order = append(r.res.Order, u)
		if err := r.emit(step.KindVisit, u, nil, "finalize %d at %d", u, item.dist); err != nil {
			return err
		}
		if u == r.options.Goal {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge of u and improves distances of unfinalized neighbors.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}
	for _, e := range neighbors {
		v := e.To
		w := r.g.Cost(e)
		if r.visited[v] || w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.res.Dist[u] + w
		old, seen := r.res.Dist[v]
		if newDist > r.options.MaxDistance || (seen && newDist >= old) {
			if err = r.emit(step.KindCompare, u, &e, "%d+%d ≥ dist[%d]", r.res.Dist[u], w, v); err != nil {
				return err
			}
			continue
		}

		r.res.Dist[v] = newDist
		r.res.Prev[v] = u
		r.push(v, newDist)
		if err = r.emit(step.KindRelax, u, &e, "dist[%d] = %d via %d", v, newDist, u); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner) emit(kind step.Kind, current int, edge *core.Edge, format string, args ...any) error {
	if r.tr == nil {
		return r.tr.Emit(r.ctx, step.Event{})
	}

	return r.tr.Emit(r.ctx, step.Event{
		Kind:  kind,
		Note:  fmt.Sprintf(format, args...),
		Graph: r.state(current, edge),
	})
}

func (r *runner) finish() error {
	if goal := r.options.Goal; goal != step.None && r.visited[goal] {
		r.res.Path, _ = r.res.PathTo(goal)
	}
	if r.tr == nil {
		return r.tr.Finish(r.ctx, step.Event{})
	}

	return r.tr.Finish(r.ctx, step.Event{
		Note:  fmt.Sprintf("finalized %d vertices", len(r.res.Order)),
		Graph: r.state(step.None, nil),
	})
}

// state snapshots the run. Frontier lists live heap entries in pop order.
func (r *runner) state(current int, edge *core.Edge) *step.GraphState {
	live := make([]*nodeItem, 0, len(r.pq))
	for _, it := range r.pq {
		if !r.visited[it.id] && it.dist == r.res.Dist[it.id] {
			live = append(live, it)
		}
	}
	slices.SortFunc(live, func(a, b *nodeItem) int {
		if a.dist != b.dist {
			return cmp.Compare(a.dist, b.dist)
		}
		return cmp.Compare(a.seq, b.seq)
	})
	frontier := make([]int, len(live))
	for i, it := range live {
		frontier[i] = it.id
	}

	return &step.GraphState{
		Current:  current,
		Edge:     edge,
		Visited:  step.SortedKeys(r.visited),
		Frontier: frontier,
		Order:    r.res.Order,
		Parent:   r.res.Prev,
		Dist:     r.res.Dist,
		Path:     r.res.Path,
	}
}
