// Package stepviz turns classic algorithms into step-by-step animations.
//
// Every algorithm reports each observable operation (a comparison, a swap, a
// relaxed edge, a shifted pattern) as a step.Event carrying a snapshot of its
// state, then suspends for a speed-dependent delay. A host can pause, resume,
// re-speed or cancel the run between any two events.
//
// Packages:
//
//	step/         events, the Tracer that emits and suspends, Controller
//	core/         undirected graph with node positions
//	builder/      random graphs, grid graphs, input sequences
//	sorting/      quick, heap, merge, bubble, selection, insertion sort
//	search/       binary search
//	bfs/, dfs/    traversals
//	dijkstra/     shortest paths
//	prim_kruskal/ minimum spanning trees
//	astar/        heuristic shortest path
//	strsearch/    brute-force and Horspool substring search
//	runner/       one entry point for all algorithms, single-run Host
//	watch/        breakpoint conditions (expr, CEL) and jq projections
//	config/       HCL scenarios and JSON requests
//	cmd/stepviz/  command line front end printing events as JSON lines
//
// Quick start:
//
//	out, err := runner.Run(ctx, runner.Request{
//		Algorithm: runner.QuickSort,
//		Array:     []int{5, 3, 8, 1},
//	}, func(ev step.Event) error {
//		fmt.Println(ev.Seq, ev.Kind, ev.Sort.Array)
//		return nil
//	}, step.WithSpeed(80))
package stepviz
