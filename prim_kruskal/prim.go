package prim_kruskal

import (
	"cmp"
	"container/heap"
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// Prim grows a minimum spanning tree from the configured root using a
// min-heap of candidate edges.
//
// Steps:
//  1. Validate graph, weights and root; freeze g for the run.
//  2. Add root to the tree and push every edge leaving it.
//  3. Pop the lightest candidate (earliest pushed among equals). Skip it if
//     its far end is already spanned; otherwise add it and push the edges of
//     the new vertex that lead outside the tree.
//  4. Stop after |V|−1 edges or when the heap runs dry (ErrDisconnected).
func Prim(ctx context.Context, tr *step.Tracer, g *core.Graph, opts ...Option) (*Result, error) {
	cfg, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	release := g.Freeze()
	defer release()

	p := &primRunner{tree: newTree(ctx, tr, g)}
	p.front = p.frontier
	if g.NodeCount() == 0 {
		return p.res, p.finish()
	}

	if err = p.start(cfg.Root); err != nil {
		return p.res, err
	}
	for p.pq.Len() > 0 && len(p.res.Edges) < g.NodeCount()-1 {
		if err = p.grow(); err != nil {
			return p.res, err
		}
	}
	if err = p.finish(); err != nil {
		return p.res, err
	}

	return p.res, p.complete()
}

// prepare applies options and checks the root.
func prepare(g *core.Graph, opts []Option) (MSTOptions, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g); err != nil {
		return cfg, err
	}
	if g.NodeCount() > 0 && !g.HasNode(cfg.Root) {
		return cfg, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Root)
	}

	return cfg, nil
}

type primRunner struct {
	*tree
	pq  edgePQ
	seq int
}

func (p *primRunner) start(root int) error {
	heap.Init(&p.pq)
	p.join(root, true)
	if err := p.emit(step.KindVisit, root, nil, "start at %d", root); err != nil {
		return err
	}

	return p.pushEdges(root)
}

// pushEdges pushes every edge of u whose far end is outside the tree.
func (p *primRunner) pushEdges(u int) error {
	neighbors, err := p.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("prim_kruskal: neighbors of %d: %w", u, err)
	}
	for _, e := range neighbors {
		if p.in[e.To] {
			continue
		}
		heap.Push(&p.pq, &edgeItem{edge: e, cost: p.g.Cost(e), seq: p.seq})
		p.seq++
		if err = p.emit(step.KindPush, u, &e, "push %d–%d (w=%d)", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}

	return nil
}

func (p *primRunner) grow() error {
	item := heap.Pop(&p.pq).(*edgeItem)
	e := item.edge
	if err := p.emit(step.KindPop, e.From, &e, "pop %d–%d (w=%d)", e.From, e.To, e.Weight); err != nil {
		return err
	}
	if p.in[e.To] {
		return p.emit(step.KindSkip, e.From, &e, "%d already in tree", e.To)
	}

	p.add(e)
	p.join(e.To, true)
	if err := p.emit(step.KindAddEdge, e.To, &e, "add %d–%d", e.From, e.To); err != nil {
		return err
	}

	return p.pushEdges(e.To)
}

// frontier lists the far ends of live candidates in pop order, without repeats.
func (p *primRunner) frontier() []int {
	live := make([]*edgeItem, 0, len(p.pq))
	for _, it := range p.pq {
		if !p.in[it.edge.To] {
			live = append(live, it)
		}
	}
	slices.SortFunc(live, func(a, b *edgeItem) int {
		if a.cost != b.cost {
			return cmp.Compare(a.cost, b.cost)
		}
		return cmp.Compare(a.seq, b.seq)
	})
	seen := make(map[int]bool, len(live))
	out := make([]int, 0, len(live))
	for _, it := range live {
		if !seen[it.edge.To] {
			seen[it.edge.To] = true
			out = append(out, it.edge.To)
		}
	}

	return out
}

// PrimSimple builds the same kind of tree as Prim without a heap. Each round
// scans the edges of tree vertices in join order and adjacency order, and
// adds the first edge of minimal weight that leaves the tree.
func PrimSimple(ctx context.Context, tr *step.Tracer, g *core.Graph, opts ...Option) (*Result, error) {
	cfg, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	release := g.Freeze()
	defer release()

	t := newTree(ctx, tr, g)
	n := g.NodeCount()
	if n == 0 {
		return t.res, t.finish()
	}

	t.join(cfg.Root, true)
	if err = t.emit(step.KindVisit, cfg.Root, nil, "start at %d", cfg.Root); err != nil {
		return t.res, err
	}
	for len(t.res.Edges) < n-1 {
		best, found, err := lightestCrossing(t)
		if err != nil {
			return t.res, err
		}
		if !found {
			break
		}
		t.add(best)
		t.join(best.To, true)
		if err = t.emit(step.KindAddEdge, best.To, &best, "add %d–%d", best.From, best.To); err != nil {
			return t.res, err
		}
	}
	if err = t.finish(); err != nil {
		return t.res, err
	}

	return t.res, t.complete()
}

func lightestCrossing(t *tree) (core.Edge, bool, error) {
	var (
		best     core.Edge
		bestCost int64
		found    bool
	)
	for _, u := range t.res.Order {
		neighbors, err := t.g.Neighbors(u)
		if err != nil {
			return best, false, fmt.Errorf("prim_kruskal: neighbors of %d: %w", u, err)
		}
		for _, e := range neighbors {
			if t.in[e.To] {
				continue
			}
			if err = t.emit(step.KindCompare, u, &e, "candidate %d–%d (w=%d)", e.From, e.To, e.Weight); err != nil {
				return best, false, err
			}
			if c := t.g.Cost(e); !found || c < bestCost {
				best, bestCost, found = e, c, true
			}
		}
	}

	return best, found, nil
}

// edgeItem is a candidate edge with its cost and push sequence.
type edgeItem struct {
	edge core.Edge
	cost int64
	seq  int
}

// edgePQ is a min-heap of candidates ordered by (cost, seq).
type edgePQ []*edgeItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(*edgeItem)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
