package core

import "sync"

// Freeze marks the graph read-only until the returned release func is called.
// Freezes nest; the graph accepts mutations again once every release ran.
// Calling release more than once has no further effect.
func (g *Graph) Freeze() (release func()) {
	g.mu.Lock()
	g.frozen++
	g.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			g.mu.Lock()
			g.frozen--
			g.mu.Unlock()
		})
	}
}

// Frozen reports whether at least one Freeze is outstanding.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen > 0
}

// Clone returns a deep, unfrozen copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		weighted: g.weighted,
		nodes:    make([]Node, len(g.nodes)),
		adj:      make([][]Edge, len(g.adj)),
		edges:    g.edges,
	}
	copy(c.nodes, g.nodes)
	for i, list := range g.adj {
		c.adj[i] = append([]Edge(nil), list...)
	}

	return c
}
