// SPDX-License-Identifier: MIT
// Package: stepviz/builder
//
// grid.go — graphs over 2D cell grids, the usual stage for A* demos.
//
// Contract:
//   • cells[y][x] ≥ GridOpen marks a passable cell; smaller values are walls.
//   • Passable cells become nodes in row-major order, placed at
//     (x·GridSpacing, y·GridSpacing).
//   • Neighbours: N, E, S, W (default) plus diagonals with WithDiagonal.
//   • WithWeighted derives weights from node distance (DistanceWeight).
//   • No RNG is needed; the result is fully determined by cells.

package builder

import (
	"github.com/katalvlaran/stepviz/core"
)

const (
	methodGrid = "Grid"

	// GridOpen is the smallest cell value treated as passable.
	GridOpen = 1

	// GridSpacing is the distance between orthogonally adjacent cells.
	GridSpacing = 40.0
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Grid builds the graph of passable cells. ids[y][x] is the node of cell
// (x, y), or -1 for a wall.
func Grid(cells [][]int, opts ...BuilderOption) (g *core.Graph, ids [][]int, err error) {
	cfg := newBuilderConfig(opts...)

	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, nil, builderErrorf(methodGrid, "%w", ErrBadGrid)
	}
	h, w := len(cells), len(cells[0])
	for y, row := range cells {
		if len(row) != w {
			return nil, nil, builderErrorf(methodGrid, "row %d has %d cells, want %d: %w", y, len(row), w, ErrBadGrid)
		}
	}

	var gopts []core.GraphOption
	if cfg.weighted {
		gopts = append(gopts, core.WithWeighted())
	}
	g = core.NewGraph(gopts...)

	ids = make([][]int, h)
	for y := range cells {
		ids[y] = make([]int, w)
		for x, v := range cells[y] {
			ids[y][x] = -1
			if v < GridOpen {
				continue
			}
			id, addErr := g.AddNode(float64(x)*GridSpacing, float64(y)*GridSpacing)
			if addErr != nil {
				return nil, nil, builderErrorf(methodGrid, "%w", joinConstruct(addErr))
			}
			ids[y][x] = id
		}
	}

	offsets := offsets4
	if cfg.diagonal {
		offsets = offsets8
	}
	for y := range ids {
		for x, u := range ids[y] {
			if u < 0 {
				continue
			}
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				// Each pair once: only link to later nodes.
				v := ids[ny][nx]
				if v <= u {
					continue
				}
				if err = g.AddEdge(u, v, gridWeight(g, cfg, u, v)); err != nil {
					return nil, nil, builderErrorf(methodGrid, "%w", joinConstruct(err))
				}
			}
		}
	}

	return g, ids, nil
}

func gridWeight(g *core.Graph, cfg builderConfig, u, v int) int64 {
	if !cfg.weighted {
		return 0
	}
	a, _ := g.Node(u)
	b, _ := g.Node(v)

	return DistanceWeight(a, b)
}
