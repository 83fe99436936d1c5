package astar_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/astar"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// ExampleAStar shows the open list after every pop on a square with one
// expensive diagonal. Vertex 3 ties with 2 and wins because it was opened first.
func ExampleAStar() {
	g := core.NewGraph(core.WithWeighted())
	for _, p := range [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}} {
		_, _ = g.AddNode(p[0], p[1])
	}
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(3, 0, 1)
	_ = g.AddEdge(0, 2, 9)

	tr := step.MustNew(step.WithoutDelay(), step.WithHandler(func(ev step.Event) error {
		if ev.Kind == step.KindPop || ev.Kind == step.KindDone {
			fmt.Println(ev.Note, ev.Graph.Frontier)
		}
		return nil
	}))
	res, _ := astar.AStar(context.Background(), tr, g, 0, 2)
	fmt.Println(res.Path)
	// Output:
	// pop 0 (f=1.4) []
	// pop 1 (f=2.0) [3 2]
	// pop 3 (f=2.0) [2]
	// pop 2 (f=2.0) []
	// path of cost 2 []
	// [0 1 2]
}
