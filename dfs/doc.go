// Package dfs implements animated depth-first search on a core.Graph in a
// recursive and an iterative form, plus undirected cycle detection.
//
// What:
//
//   - DFS: marks a vertex visited on entry, explores neighbors in
//     adjacency order, and records a parent only for the first visitor.
//     Emits visit on entry and finish after all descendants are explored.
//   - DFSIterative: explicit stack of (vertex, parent) pairs. Neighbors are
//     pushed in reverse adjacency order and the parent is fixed when a
//     vertex is popped unvisited, which yields exactly the visit order and
//     parent map of DFS. Emits push, pop and visit; stale pops emit skip.
//   - DetectCycle: reports whether an undirected graph holds a cycle and
//     returns one as a closed walk [v0 … v0].
//
// Both traversals fill a DFSResult:
//
//   - Order:  pre-order (visit sequence)
//   - Finish: post-order (DFS only; DFSIterative leaves it nil)
//   - Depth:  vertex → tree depth
//   - Parent: vertex → tree parent (roots absent)
//
// Options:
//
//   - WithFilterNeighbor(fn)  skip neighbor ids for which fn returns false.
//   - WithFullTraversal()     restart from every unvisited vertex (forest).
//
// Complexity:
//
//   - DFS, DFSIterative:  Time O(V+E), Memory O(V+E) for the iterative stack
//   - DetectCycle:        Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - step.ErrCancelled       run cancelled; the partial result is returned
package dfs
