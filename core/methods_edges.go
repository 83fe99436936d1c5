package core

import "fmt"

// AddEdge connects u and v with the given weight.
//
// Steps:
//  1. Reject mutation on a frozen graph (ErrFrozen).
//  2. Validate endpoints (ErrNodeNotFound), self-loops (ErrSelfLoop) and
//     weight mode (ErrBadWeight for non-zero weight on unweighted graphs).
//  3. Reject an existing u–v connection (ErrDuplicateEdge).
//  4. Append the edge to adj[u] and its mirror to adj[v].
//
// Complexity: O(deg(u)) for the duplicate scan.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen > 0 {
		return ErrFrozen
	}
	if !g.has(u) || !g.has(v) {
		return fmt.Errorf("%w: edge %d–%d", ErrNodeNotFound, u, v)
	}
	if u == v {
		return fmt.Errorf("%w: %d", ErrSelfLoop, u)
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	for _, e := range g.adj[u] {
		if e.To == v {
			return fmt.Errorf("%w: %d–%d", ErrDuplicateEdge, u, v)
		}
	}

	g.adj[u] = append(g.adj[u], Edge{From: u, To: v, Weight: weight})
	g.adj[v] = append(g.adj[v], Edge{From: v, To: u, Weight: weight})
	g.edges++

	return nil
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Weight returns the weight of the u–v edge and whether it exists.
func (g *Graph) Weight(u, v int) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(u) {
		return 0, false
	}
	for _, e := range g.adj[u] {
		if e.To == v {
			return e.Weight, true
		}
	}

	return 0, false
}

// Neighbors returns the edges incident to id, with From == id, in insertion order.
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	out := make([]Edge, len(g.adj[id]))
	copy(out, g.adj[id])

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id in insertion order.
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	out := make([]int, len(g.adj[id]))
	for i, e := range g.adj[id] {
		out[i] = e.To
	}

	return out, nil
}

// Edges returns every undirected edge once, with From < To,
// ordered by From and then by adjacency order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for u := range g.adj {
		for _, e := range g.adj[u] {
			if e.From < e.To {
				out = append(out, e)
			}
		}
	}

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Cost returns the traversal cost of e: its weight on weighted graphs and
// 1 on unweighted ones, so shortest-path and MST algorithms treat an
// unweighted graph as unit-weighted.
func (g *Graph) Cost(e Edge) int64 {
	if g.Weighted() {
		return e.Weight
	}

	return 1
}
