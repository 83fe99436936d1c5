package prim_kruskal

import (
	"cmp"
	"context"
	"slices"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// Kruskal computes a minimum spanning forest with a stable sort of the
// edges by weight and a disjoint-set union.
//
// Steps:
//  1. Validate graph and weights; freeze g for the run.
//  2. Stable-sort g.Edges() by cost; equal costs keep g.Edges() order.
//  3. For each edge emit compare; if its endpoints lie in different sets,
//     union them and emit add-edge, otherwise emit skip.
//  4. Stop at |V|−1 edges. Fewer after the last edge → ErrDisconnected.
func Kruskal(ctx context.Context, tr *step.Tracer, g *core.Graph) (*Result, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	release := g.Freeze()
	defer release()

	t := newTree(ctx, tr, g)
	n := g.NodeCount()
	edges := g.Edges()
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		return cmp.Compare(g.Cost(a), g.Cost(b))
	})

	ds := newDisjointSet(n)
	for _, e := range edges {
		if len(t.res.Edges) == n-1 {
			break
		}
		if err := t.emit(step.KindCompare, e.From, &e, "consider %d–%d (w=%d)", e.From, e.To, e.Weight); err != nil {
			return t.res, err
		}
		if !ds.union(e.From, e.To) {
			if err := t.emit(step.KindSkip, e.From, &e, "%d and %d already connected", e.From, e.To); err != nil {
				return t.res, err
			}
			continue
		}
		t.add(e)
		t.join(e.From, false)
		t.join(e.To, false)
		if err := t.emit(step.KindAddEdge, e.To, &e, "add %d–%d", e.From, e.To); err != nil {
			return t.res, err
		}
	}
	if err := t.finish(); err != nil {
		return t.res, err
	}

	return t.res, t.complete()
}

// disjointSet is union-find over dense vertex ids with path halving and
// union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
