package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/core"
)

// square builds 0–1–2–3–0 with the given weights.
func square(t *testing.T, weighted bool) *core.Graph {
	t.Helper()
	var opts []core.GraphOption
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for i := 0; i < 4; i++ {
		_, err := g.AddNode(float64(i*10), 0)
		require.NoError(t, err)
	}
	w := func(x int64) int64 {
		if weighted {
			return x
		}
		return 0
	}
	require.NoError(t, g.AddEdge(0, 1, w(1)))
	require.NoError(t, g.AddEdge(1, 2, w(2)))
	require.NoError(t, g.AddEdge(2, 3, w(3)))
	require.NoError(t, g.AddEdge(3, 0, w(4)))

	return g
}

func TestGraph_AddNodeAssignsDenseIDs(t *testing.T) {
	g := core.NewGraph()
	for want := 0; want < 3; want++ {
		id, err := g.AddNode(1, 2)
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
	assert.Equal(t, 3, g.NodeCount())
	assert.True(t, g.HasNode(2))
	assert.False(t, g.HasNode(3))
	assert.False(t, g.HasNode(-1))

	n, err := g.Node(1)
	require.NoError(t, err)
	assert.Equal(t, core.Node{ID: 1, X: 1, Y: 2}, n)

	_, err = g.Node(7)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := square(t, false)

	assert.ErrorIs(t, g.AddEdge(0, 0, 0), core.ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge(0, 1, 0), core.ErrDuplicateEdge)
	assert.ErrorIs(t, g.AddEdge(1, 0, 0), core.ErrDuplicateEdge)
	assert.ErrorIs(t, g.AddEdge(0, 9, 0), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge(0, 2, 5), core.ErrBadWeight)
	assert.Equal(t, 4, g.EdgeCount())

	require.NoError(t, g.AddEdge(0, 2, 0))
	assert.Equal(t, 5, g.EdgeCount())
}

func TestGraph_NeighborsKeepInsertionOrder(t *testing.T) {
	g := square(t, true)

	ids, err := g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)

	edges, err := g.Neighbors(3)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 3, To: 2, Weight: 3}, {From: 3, To: 0, Weight: 4}}, edges)

	_, err = g.Neighbors(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	// mutating the returned slice must not leak into the graph
	edges[0].Weight = 99
	w, ok := g.Weight(3, 2)
	require.True(t, ok)
	assert.Equal(t, int64(3), w)
}

func TestGraph_EdgesListsEachOnce(t *testing.T) {
	g := square(t, true)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 3, Weight: 4},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 3},
	}, g.Edges())
	assert.True(t, g.HasEdge(2, 1))
	assert.False(t, g.HasEdge(0, 2))
}

func TestGraph_FreezeBlocksMutation(t *testing.T) {
	g := square(t, false)

	release1 := g.Freeze()
	release2 := g.Freeze()
	assert.True(t, g.Frozen())

	_, err := g.AddNode(0, 0)
	assert.ErrorIs(t, err, core.ErrFrozen)
	assert.ErrorIs(t, g.AddEdge(0, 2, 0), core.ErrFrozen)

	release1()
	release1() // idempotent
	assert.True(t, g.Frozen(), "second freeze still outstanding")

	release2()
	assert.False(t, g.Frozen())
	require.NoError(t, g.AddEdge(0, 2, 0))
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := square(t, true)
	release := g.Freeze()
	defer release()

	c := g.Clone()
	assert.False(t, c.Frozen())
	assert.True(t, c.Weighted())
	assert.Equal(t, g.Edges(), c.Edges())

	require.NoError(t, c.AddEdge(0, 2, 7))
	assert.False(t, g.HasEdge(0, 2))
}

func TestGraph_Cost(t *testing.T) {
	e := core.Edge{From: 0, To: 1, Weight: 7}
	assert.Equal(t, int64(7), square(t, true).Cost(e))
	assert.Equal(t, int64(1), square(t, false).Cost(e))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, core.Distance(core.Node{X: 0, Y: 0}, core.Node{X: 3, Y: 4}), 1e-9)
}

func TestGraph_ConcurrentReads(t *testing.T) {
	g := square(t, true)
	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if _, err := g.Neighbors(id % 4); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.False(t, errors.Is(err, core.ErrNodeNotFound), err)
	}
}
