// Package bfs provides an animated breadth-first search over a core.Graph,
// returning hop distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - A vertex is marked visited when it is enqueued, not when it is
//     dequeued, so it enters the queue at most once.
//   - Neighbors are examined in adjacency-list (insertion) order.
//   - Returns a BFSResult containing:
//   - Order:  dequeue sequence
//   - Depth:  vertex → hops from start
//   - Parent: vertex → predecessor in the BFS tree (first discoverer)
//
// Events
//
//	enqueue  a vertex is discovered (Edge is the discovering edge)
//	dequeue  a vertex leaves the queue and is visited
//	done     the queue is empty
//
// Every event carries Visited, Frontier (queue contents), Order, Parent
// and Dist (hop counts).
//
// Options
//
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0); 0 means no limit.
//   - WithFilterNeighbor(fn): skip edges for which fn(curr,neighbor)==false.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - step.ErrCancelled       if the run was cancelled; the partial result is returned.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) plus one event per enqueue and dequeue
//   - Memory: O(V)
package bfs
