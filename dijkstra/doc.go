// Package dijkstra provides an animated implementation of Dijkstra's
// shortest-path algorithm on graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - Frontier: a binary min-heap keyed by (distance, insertion sequence).
//     Equal distances pop in the order they were pushed, which makes every
//     run bit-for-bit reproducible.
//   - Lazy decrease-key: an improved distance pushes a duplicate entry; stale
//     entries are discarded when popped for an already finalized vertex.
//   - An edge u→v relaxes only when dist[u] + w < dist[v] (strict).
//   - On unweighted graphs every edge costs 1.
//
// Events:
//
//	push     source entered the heap
//	pop      an entry left the heap
//	skip     the popped entry was stale
//	visit    the popped vertex is finalized
//	relax    an edge improved a distance (Edge is set)
//	compare  an edge was examined without improvement
//	done     heap exhausted, goal reached, or distance cap hit
//
// Options:
//
//   - WithGoal(id):             stop once id is finalized and fill Result.Path.
//   - WithMaxDistance(x):       vertices with distance > x are not explored (x ≥ 0).
//   - WithInfEdgeThreshold(t):  edges with weight ≥ t are impassable (t > 0).
//
// Errors (sentinel, all wrap step.ErrInvalidInput):
//
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrVertexNotFound  if the source or goal vertex does not exist.
//   - ErrNegativeWeight  if a negative edge weight is present.
//   - ErrBadMaxDistance  if MaxDistance < 0.
//   - ErrBadInfThreshold if InfEdgeThreshold ≤ 0.
//
// ErrNoPath is returned by Result.PathTo for unreachable targets.
package dijkstra
