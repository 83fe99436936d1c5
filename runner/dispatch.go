package runner

import (
	"context"
	"slices"

	"github.com/katalvlaran/stepviz/astar"
	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dfs"
	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/prim_kruskal"
	"github.com/katalvlaran/stepviz/search"
	"github.com/katalvlaran/stepviz/sorting"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/strsearch"
)

// runFunc executes one algorithm and copies its (possibly partial) result
// into out even when it fails.
type runFunc func(ctx context.Context, tr *step.Tracer, req Request, out *Outcome) error

type descriptor struct {
	family Family
	run    runFunc
}

var registry = map[Algorithm]descriptor{
	QuickSort:         {FamilySequence, sortWith(sorting.QuickSort)},
	QuickSortMedian3:  {FamilySequence, sortWith(sorting.QuickSortMedian3)},
	HeapSort:          {FamilySequence, sortWith(sorting.HeapSort)},
	MergeSort:         {FamilySequence, sortWith(sorting.MergeSort)},
	MergeSortBottomUp: {FamilySequence, sortWith(sorting.MergeSortBottomUp)},
	BubbleSort:        {FamilySequence, sortWith(sorting.BubbleSort)},
	SelectionSort:     {FamilySequence, sortWith(sorting.SelectionSort)},
	InsertionSort:     {FamilySequence, sortWith(sorting.InsertionSort)},
	BinarySearch:      {FamilySearch, runBinarySearch},
	BFS:               {FamilyGraph, runBFS},
	DFS:               {FamilyGraph, traverseWith(dfs.DFS)},
	DFSIterative:      {FamilyGraph, traverseWith(dfs.DFSIterative)},
	Dijkstra:          {FamilyGraph, runDijkstra},
	Prim:              {FamilyGraph, spanWith(prim_kruskal.MethodPrim)},
	PrimSimple:        {FamilyGraph, spanWith(prim_kruskal.MethodPrimSimple)},
	Kruskal:           {FamilyGraph, spanWith(prim_kruskal.MethodKruskal)},
	AStar:             {FamilyGraph, runAStar},
	BruteForce:        {FamilyText, runBruteForce},
	Horspool:          {FamilyText, runHorspool},
}

func sortWith(fn sorting.Func) runFunc {
	return func(ctx context.Context, tr *step.Tracer, req Request, out *Outcome) error {
		out.Array = slices.Clone(req.Array)
		return fn(ctx, tr, out.Array)
	}
}

func runBinarySearch(ctx context.Context, tr *step.Tracer, req Request, out *Outcome) error {
	var opts []search.Option
	if req.Leftmost {
		opts = append(opts, search.WithLeftmost())
	}
	out.Array = slices.Clone(req.Array)
	idx, err := search.BinarySearch(ctx, tr, out.Array, req.Target, opts...)
	out.Index = &idx

	return err
}

func runBFS(ctx context.Context, tr *step.Tracer, req Request, out *Outcome) error {
	res, err := bfs.BFS(ctx, tr, req.Graph, req.Start)
	if res != nil {
		out.Order, out.Parent = res.Order, res.Parent
		out.Dist = make(map[int]int64, len(res.Depth))
		for id, d := range res.Depth {
			out.Dist[id] = int64(d)
		}
		if req.Goal != nil {
			out.Path, _ = res.PathTo(*req.Goal)
		}
	}

	return err
}

func traverseWith(fn func(context.Context, *step.Tracer, *core.Graph, int, ...dfs.Option) (*dfs.DFSResult, error)) runFunc {
	return func(ctx context.Context, tr *step.Tracer, req Request, out *Outcome) error {
		res, err := fn(ctx, tr, req.Graph, req.Start)
		if res != nil {
			out.Order, out.Parent = res.Order, res.Parent
		}

		return err
	}
}

func runDijkstra(ctx context.Context, tr *step.Tracer, req Request, out *Outcome) error {
	var opts []dijkstra.Option
	if req.Goal != nil {
		opts = append(opts, dijkstra.WithGoal(*req.Goal))
	}
	res, err := dijkstra.Dijkstra(ctx, tr, req.Graph, req.Start, opts...)
	if res != nil {
		out.Order, out.Parent, out.Dist, out.Path = res.Order, res.Prev, res.Dist, res.Path
		if req.Goal != nil {
			out.Cost = res.Dist[*req.Goal]
		}
	}

	return err
}

func spanWith(method string) runFunc {
	return func(ctx context.Context, tr *step.Tracer, req Request, out *Outcome) error {
		res, err := prim_kruskal.Compute(ctx, tr, req.Graph, method, prim_kruskal.WithRoot(req.Start))
		if res != nil {
			out.Order, out.Tree, out.Cost = res.Order, res.Edges, res.Total
		}

		return err
	}
}

func runAStar(ctx context.Context, tr *step.Tracer, req Request, out *Outcome) error {
	var opts []astar.Option
	if req.HeuristicScale != nil {
		opts = append(opts, astar.WithHeuristicScale(*req.HeuristicScale))
	}
	res, err := astar.AStar(ctx, tr, req.Graph, req.Start, *req.Goal, opts...)
	if res != nil {
		out.Order, out.Parent, out.Dist = res.Closed, res.Parent, res.G
		out.Path, out.Cost = res.Path, res.Cost
	}

	return err
}

func runBruteForce(ctx context.Context, tr *step.Tracer, req Request, out *Outcome) error {
	matches, err := strsearch.BruteForce(ctx, tr, req.Text, req.Pattern)
	out.Matches = matches

	return err
}

func runHorspool(ctx context.Context, tr *step.Tracer, req Request, out *Outcome) error {
	var opts []strsearch.Option
	if req.Overlapping {
		opts = append(opts, strsearch.WithOverlapping())
	}
	matches, err := strsearch.Horspool(ctx, tr, req.Text, req.Pattern, opts...)
	out.Matches = matches

	return err
}
