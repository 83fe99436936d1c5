package dfs_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dfs"
	"github.com/katalvlaran/stepviz/internal/steptest"
	"github.com/katalvlaran/stepviz/step"
)

// tree is 0–1, 0–2, 1–3, 2–3, 1–4: vertex 3 is reachable from 1 and 2.
func tree(t *testing.T) *core.Graph {
	return steptest.Graph(t, false, 5,
		[3]int{0, 1}, [3]int{0, 2}, [3]int{1, 3}, [3]int{2, 3}, [3]int{1, 4})
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(context.Background(), nil, nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.DFSIterative(context.Background(), nil, tree(t), 7)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, err, step.ErrInvalidInput)
}

func TestDFS_Recursive(t *testing.T) {
	tr, rec := steptest.Tracer(t)
	res, err := dfs.DFS(context.Background(), tr, tree(t), 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 2, 4}, res.Order)
	assert.Equal(t, []int{2, 3, 4, 1, 0}, res.Finish)
	assert.Equal(t, map[int]int{1: 0, 3: 1, 2: 3, 4: 1}, res.Parent)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 3: 2, 2: 3, 4: 2}, res.Depth)

	assert.Equal(t, 5, rec.Count(step.KindVisit))
	assert.Equal(t, 5, rec.Count(step.KindFinish))
	assert.Equal(t, step.KindDone, rec.Last(t).Kind)

	// The frontier of a recursive DFS is the current path.
	evs := rec.Events()
	assert.Equal(t, []int{0, 1, 3, 2}, evs[3].Graph.Frontier)
}

func TestDFS_IterativeMatchesRecursive(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g, err := builder.RandomConnected(12, 10, builder.WithSeed(seed))
		require.NoError(t, err)
		for start := 0; start < g.NodeCount(); start += 4 {
			rec, err := dfs.DFS(context.Background(), nil, g, start)
			require.NoError(t, err)
			it, err := dfs.DFSIterative(context.Background(), nil, g, start)
			require.NoError(t, err)

			if diff := cmp.Diff(rec.Order, it.Order); diff != "" {
				t.Fatalf("seed %d start %d: order mismatch (-rec +it):\n%s", seed, start, diff)
			}
			if diff := cmp.Diff(rec.Parent, it.Parent); diff != "" {
				t.Fatalf("seed %d start %d: parent mismatch (-rec +it):\n%s", seed, start, diff)
			}
			assert.Equal(t, rec.Depth, it.Depth)
			assert.Nil(t, it.Finish)

			// Every vertex is reached and parents precede children.
			require.Len(t, rec.Order, g.NodeCount())
			pos := make(map[int]int)
			for i, id := range rec.Order {
				pos[id] = i
			}
			for child, parent := range rec.Parent {
				assert.Less(t, pos[parent], pos[child])
			}
		}
	}
}

func TestDFSIterative_Events(t *testing.T) {
	g := steptest.Graph(t, false, 3, [3]int{0, 1}, [3]int{0, 2}, [3]int{1, 2})
	tr, rec := steptest.Tracer(t)
	res, err := dfs.DFSIterative(context.Background(), tr, g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, map[int]int{1: 0, 2: 1}, res.Parent)

	// push 0, pop 0, visit 0, push 2, push 1, pop 1, visit 1, push 2,
	// pop 2, visit 2, pop 2, skip 2, done.
	assert.Equal(t, []step.Kind{
		step.KindPush, step.KindPop, step.KindVisit,
		step.KindPush, step.KindPush,
		step.KindPop, step.KindVisit, step.KindPush,
		step.KindPop, step.KindVisit,
		step.KindPop, step.KindSkip,
		step.KindDone,
	}, rec.Kinds())
	assert.Equal(t, []int{2, 1}, rec.Events()[4].Graph.Frontier)
}

func TestDFS_FullTraversalAndFilter(t *testing.T) {
	g := steptest.Graph(t, false, 5, [3]int{0, 1}, [3]int{2, 3})

	res, err := dfs.DFS(context.Background(), nil, g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)

	res, err = dfs.DFS(context.Background(), nil, g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)

	res, err = dfs.DFSIterative(context.Background(), nil, tree(t), 0,
		dfs.WithFilterNeighbor(func(id int) bool { return id != 3 }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 2}, res.Order)
}

func TestDFS_Cancel(t *testing.T) {
	for name, run := range map[string]func(context.Context, *step.Tracer, *core.Graph, int, ...dfs.Option) (*dfs.DFSResult, error){
		"recursive": dfs.DFS,
		"iterative": dfs.DFSIterative,
	} {
		tr, rec := steptest.CancelAfter(t, 2)
		res, err := run(context.Background(), tr, tree(t), 0)
		assert.ErrorIs(t, err, step.ErrCancelled, name)
		require.NotNil(t, res, name)
		assert.Len(t, rec.Events(), 2, name)
		assert.Zero(t, rec.Count(step.KindDone), name)
	}
}

func TestDetectCycle(t *testing.T) {
	has, cycle, err := dfs.DetectCycle(tree(t))
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, []int{0, 1, 3, 2, 0}, cycle)

	path := steptest.Graph(t, false, 4, [3]int{0, 1}, [3]int{1, 2}, [3]int{2, 3})
	has, cycle, err = dfs.DetectCycle(path)
	require.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, cycle)

	has, _, err = dfs.DetectCycle(nil)
	require.NoError(t, err)
	assert.False(t, has)
}
