package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	ctx   context.Context
	tr    *step.Tracer
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult

	// frontier is the recursion path or the explicit stack, bottom first.
	frontier []int
}

// DFS performs recursive depth-first search on g from start. With
// WithFullTraversal it covers every component, starting roots in id order.
func DFS(ctx context.Context, tr *step.Tracer, g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	w, err := newWalker(ctx, tr, g, start, opts)
	if err != nil {
		return nil, err
	}
	release := g.Freeze()
	defer release()

	err = w.forEachRoot(start, func(root int) error {
		return w.traverse(root, nil, 0)
	})
	if err != nil {
		return w.res, err
	}

	return w.res, w.finish()
}

func newWalker(ctx context.Context, tr *step.Tracer, g *core.Graph, start int, opts []Option) (*dfsWalker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	return &dfsWalker{ctx: ctx, tr: tr, graph: g, opts: dopts, res: newResult(g.NodeCount())}, nil
}

// forEachRoot runs fn from start and, in full-traversal mode, from every
// vertex still unvisited afterwards.
func (w *dfsWalker) forEachRoot(start int, fn func(root int) error) error {
	if err := fn(start); err != nil {
		return err
	}
	if !w.opts.FullTraversal {
		return nil
	}
	for v := 0; v < w.graph.NodeCount(); v++ {
		if !w.res.Visited[v] {
			if err := fn(v); err != nil {
				return err
			}
		}
	}

	return nil
}

// traverse visits id, entered through via, then recurses into unvisited neighbors.
func (w *dfsWalker) traverse(id int, via *core.Edge, depth int) error {
	w.markVisited(id, via, depth)
	w.frontier = append(w.frontier, id)
	if err := w.emit(step.KindVisit, id, via, "visit %d", id); err != nil {
		return err
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
	}
	for _, e := range nbs {
		if !w.opts.allow(e.To) || w.res.Visited[e.To] {
			continue
		}
		if err = w.traverse(e.To, &e, depth+1); err != nil {
			return err
		}
	}

	w.frontier = w.frontier[:len(w.frontier)-1]
	w.res.Finish = append(w.res.Finish, id)

	return w.emit(step.KindFinish, id, nil, "finish %d", id)
}

func (w *dfsWalker) markVisited(id int, via *core.Edge, depth int) {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)
	if via != nil {
		w.res.Parent[id] = via.From
	}
}

func (w *dfsWalker) emit(kind step.Kind, current int, edge *core.Edge, format string, args ...any) error {
	if w.tr == nil {
		return w.tr.Emit(w.ctx, step.Event{})
	}

	return w.tr.Emit(w.ctx, step.Event{
		Kind:  kind,
		Note:  fmt.Sprintf(format, args...),
		Graph: w.state(current, edge),
	})
}

func (w *dfsWalker) finish() error {
	if w.tr == nil {
		return w.tr.Finish(w.ctx, step.Event{})
	}
	w.frontier = w.frontier[:0]

	return w.tr.Finish(w.ctx, step.Event{
		Note:  fmt.Sprintf("visited %d vertices", len(w.res.Order)),
		Graph: w.state(step.None, nil),
	})
}

func (w *dfsWalker) state(current int, edge *core.Edge) *step.GraphState {
	dist := make(map[int]int64, len(w.res.Depth))
	for id, d := range w.res.Depth {
		dist[id] = int64(d)
	}

	return &step.GraphState{
		Current:  current,
		Edge:     edge,
		Visited:  step.SortedKeys(w.res.Visited),
		Frontier: w.frontier,
		Order:    w.res.Order,
		Parent:   w.res.Parent,
		Dist:     dist,
	}
}
