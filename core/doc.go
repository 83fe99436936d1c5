// Package core provides the small, thread-safe, undirected graph model that
// every traversal, shortest-path and spanning-tree animation in stepviz reads.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Nodes carry an integer ID (0..n-1, assigned densely by AddNode) and a
//     2D position used only for layout and for the A* heuristic.
//   - Edges are undirected; adjacency lists keep insertion order, which is
//     the neighbor order every algorithm iterates in.
//   - Weighted vs. unweighted (WithWeighted). Unweighted graphs reject
//     non-zero weights with ErrBadWeight.
//   - Self-loops and parallel edges are always rejected
//     (ErrSelfLoop, ErrDuplicateEdge).
//
// Weights are not range-checked here. Generators in package builder
// guarantee weight ≥ 1, and algorithms that need non-negative weights
// (Dijkstra, A*) validate their own preconditions.
//
// Freezing:
//
//	release := g.Freeze()
//	defer release()
//
// While at least one Freeze is outstanding, AddNode/AddEdge fail with
// ErrFrozen. The runner freezes the graph for the duration of a run so the
// caller cannot mutate it while an animation is reading it.
//
// Concurrency:
//
//	A single sync.RWMutex guards nodes and adjacency. Query methods return
//	copies, so callers may keep results after the lock is released.
//
// Complexity:
//
//	AddNode O(1), AddEdge O(deg), Neighbors O(deg), Edges O(V+E).
package core
