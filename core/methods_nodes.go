package core

// AddNode appends a node at position (x, y) and returns its ID.
// IDs are assigned densely in insertion order: 0, 1, 2, ...
//
// Errors:
//   - ErrFrozen if the graph is frozen.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(x, y float64) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen > 0 {
		return -1, ErrFrozen
	}
	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, X: x, Y: y})
	g.adj = append(g.adj, nil)

	return id, nil
}

// HasNode reports whether id names a node of g.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.has(id)
}

// Node returns the node with the given id.
func (g *Graph) Node(id int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return Node{}, ErrNodeNotFound
	}

	return g.nodes[id], nil
}

// Nodes returns a copy of all nodes ordered by ID.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// has must be called with mu held.
func (g *Graph) has(id int) bool {
	return id >= 0 && id < len(g.nodes)
}
