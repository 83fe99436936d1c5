// Package astar finds a cheapest path between two vertices of a *core.Graph
// with the A* search, guided by the straight-line distance between node
// positions.
//
// The open list is a plain slice in insertion order. Each iteration scans
// it for the lowest f = g + h; the first vertex with that score wins ties.
// The heuristic is h(v) = scale × Euclidean(v, goal), with scale 0.1 by
// default. That matches the builder's weights (round(dist/10) + 1), which
// keeps h consistent there. Unweighted graphs cost 1 per edge; there any
// positive scale is replaced by 1 / (longest edge length), which turns h
// into a lower bound on the hops left. WithHeuristicScale(0) gives
// uniform-cost search on either kind of graph.
//
// Events: push (vertex opened), pop (vertex chosen), visit (vertex closed),
// relax (cheaper route to an open vertex), compare (route not cheaper), done.
// Snapshots carry g in Dist, f in Score and the open list in Frontier.
package astar
