package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid.
// Vertex r*3+c sits at row r, column c.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		_, _ = g.AddNode(float64(i%3), float64(i/3))
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			id := r*3 + c
			if c+1 < 3 {
				_ = g.AddEdge(id, id+1, 0)
			}
			if r+1 < 3 {
				_ = g.AddEdge(id, id+3, 0)
			}
		}
	}

	res, err := bfs.BFS(context.Background(), nil, g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
}

// ExampleBFS_steps prints the frontier after every step.
func ExampleBFS_steps() {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		_, _ = g.AddNode(0, 0)
	}
	_ = g.AddEdge(0, 1, 0)
	_ = g.AddEdge(0, 2, 0)
	_ = g.AddEdge(2, 3, 0)

	tr := step.MustNew(step.WithoutDelay(), step.WithHandler(func(ev step.Event) error {
		fmt.Printf("%-7s frontier=%v\n", ev.Kind, ev.Graph.Frontier)
		return nil
	}))
	_, _ = bfs.BFS(context.Background(), tr, g, 0)
	// Output:
	// enqueue frontier=[0]
	// dequeue frontier=[]
	// enqueue frontier=[1]
	// enqueue frontier=[1 2]
	// dequeue frontier=[2]
	// dequeue frontier=[]
	// enqueue frontier=[3]
	// dequeue frontier=[]
	// done    frontier=[]
}
