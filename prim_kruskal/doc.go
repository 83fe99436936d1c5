// Package prim_kruskal computes minimum spanning trees of an undirected
// *core.Graph while reporting every candidate edge to a *step.Tracer.
//
// What & Why
//
//   - An MST of a connected graph G = (V, E) is a subset T ⊆ E that spans V
//     with minimal total weight. On unweighted graphs every edge costs 1, so
//     any spanning tree is minimal and the animation shows the growth order.
//
// Algorithms Provided
//
//   - Prim(ctx, tr, g, opts...) (*Result, error)
//     Grows a single tree from Root (default 0). Candidate edges live in a
//     min-heap keyed by (weight, push sequence), so equal weights leave the
//     heap in the order they entered it. Stale candidates whose far end has
//     joined the tree are popped and skipped.
//     Events: push, pop, skip, add-edge, done. Time O(E log E).
//
//   - PrimSimple(ctx, tr, g, opts...) (*Result, error)
//     Same tree growth without a heap: every round scans all edges leaving
//     the tree and takes the first lightest one.
//     Events: compare, add-edge, done. Time O(V·E).
//
//   - Kruskal(ctx, tr, g) (*Result, error)
//     Stable sort of g.Edges() by weight, then union-find with path
//     compression and union by rank. Events: compare, add-edge, skip, done.
//     Time O(E log E).
//
//   - Compute(ctx, tr, g, method, opts...) dispatches by method name.
//
// Snapshots carry the tree built so far (GraphState.Tree), the vertices it
// spans (Visited) and, for Prim, the far ends of live candidates (Frontier).
//
// Error Conditions
//
//   - ErrNilGraph: graph is nil.
//   - ErrVertexNotFound: Root is not a vertex of g.
//   - ErrNegativeWeight: some edge has negative weight.
//   - ErrDisconnected: fewer than |V|−1 edges could be added. The partial
//     Result (a spanning tree of Root's component for Prim, a forest for
//     Kruskal) is returned with it.
//   - step.ErrCancelled: the run was cancelled; the partial Result is returned.
package prim_kruskal
