package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	tr      *step.Tracer
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start, reporting every
// enqueue and dequeue to tr. On cancellation the partial result is
// returned together with step.ErrCancelled.
func BFS(ctx context.Context, tr *step.Tracer, g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	release := g.Freeze()
	defer release()

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     ctx,
		tr:      tr,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// Seed queue with start vertex (no parent)
	if err := w.enqueue(start, 0, nil); err != nil {
		return w.res, err
	}
	if err := w.loop(); err != nil {
		return w.res, err
	}

	return w.res, w.finish()
}

// enqueue marks id visited at depth d, records its parent and emits.
func (w *walker) enqueue(id, d int, via *core.Edge) error {
	w.visited[id] = true
	w.res.Depth[id] = d
	if via != nil {
		w.res.Parent[id] = via.From
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})

	return w.emit(step.KindEnqueue, id, via, "enqueue %d at depth %d", id, d)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item, err := w.dequeue()
		if err != nil {
			return err
		}
		if err = w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, records it in Order and emits.
func (w *walker) dequeue() (queueItem, error) {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.res.Order = append(w.res.Order, item.id)

	return item, w.emit(step.KindDequeue, item.id, nil, "visit %d", item.id)
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, e := range neighbors {
		if !w.opts.FilterNeighbor(item.id, e.To) || w.visited[e.To] {
			continue
		}
		if err = w.enqueue(e.To, nextDepth, &e); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) emit(kind step.Kind, current int, edge *core.Edge, format string, args ...any) error {
	if w.tr == nil {
		return w.tr.Emit(w.ctx, step.Event{})
	}

	return w.tr.Emit(w.ctx, step.Event{
		Kind:  kind,
		Note:  fmt.Sprintf(format, args...),
		Graph: w.state(current, edge),
	})
}

func (w *walker) finish() error {
	if w.tr == nil {
		return w.tr.Finish(w.ctx, step.Event{})
	}

	return w.tr.Finish(w.ctx, step.Event{
		Note:  fmt.Sprintf("visited %d vertices", len(w.res.Order)),
		Graph: w.state(step.None, nil),
	})
}

func (w *walker) state(current int, edge *core.Edge) *step.GraphState {
	frontier := make([]int, len(w.queue))
	for i, it := range w.queue {
		frontier[i] = it.id
	}
	dist := make(map[int]int64, len(w.res.Depth))
	for id, d := range w.res.Depth {
		dist[id] = int64(d)
	}

	return &step.GraphState{
		Current:  current,
		Edge:     edge,
		Visited:  step.SortedKeys(w.visited),
		Frontier: frontier,
		Order:    w.res.Order,
		Parent:   w.res.Parent,
		Dist:     dist,
	}
}
