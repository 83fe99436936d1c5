package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/core"
)

// DetectCycle inspects the undirected graph g for a cycle using
// three-color marking. It returns the first cycle found as a closed walk
// [v0, v1, …, v0], scanning roots in id order. A nil graph is cycle-free.
//
// The edge back to the DFS parent is not a cycle; the core graph has no
// parallel edges, so every other Gray neighbor closes one.
func DetectCycle(g *core.Graph) (bool, []int, error) {
	if g == nil {
		return false, nil, nil
	}
	n := g.NodeCount()
	state := make([]int, n)
	path := make([]int, 0, n)

	var visit func(id, parent int) ([]int, error)
	visit = func(id, parent int) ([]int, error) {
		state[id] = Gray
		path = append(path, id)

		nbs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("NeighborIDs(%d): %w", id, err)
		}
		for _, nbr := range nbs {
			if nbr == parent {
				continue
			}
			switch state[nbr] {
			case White:
				cycle, err := visit(nbr, id)
				if cycle != nil || err != nil {
					return cycle, err
				}
			case Gray:
				idx := slices.Index(path, nbr)
				cycle := append(slices.Clone(path[idx:]), nbr)
				return cycle, nil
			}
		}

		path = path[:len(path)-1]
		state[id] = Black

		return nil, nil
	}

	for v := 0; v < n; v++ {
		if state[v] != White {
			continue
		}
		cycle, err := visit(v, -1)
		if err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycle: %w", err)
		}
		if cycle != nil {
			return true, cycle, nil
		}
	}

	return false, nil, nil
}
