package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/internal/steptest"
	"github.com/katalvlaran/stepviz/step"
)

// triangle: 0–1 (1), 0–2 (4), 1–2 (2). The direct edge to 2 loses to 0→1→2.
func triangle(t *testing.T) *core.Graph {
	return steptest.Graph(t, true, 3, [3]int{0, 1, 1}, [3]int{0, 2, 4}, [3]int{1, 2, 2})
}

// floyd computes all-pairs distances as an independent reference.
func floyd(g *core.Graph) [][]int64 {
	const inf = math.MaxInt64 / 4
	n := g.NodeCount()
	d := make([][]int64, n)
	for i := range d {
		d[i] = make([]int64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = inf
			}
		}
	}
	for _, e := range g.Edges() {
		w := g.Cost(e)
		d[e.From][e.To] = min(d[e.From][e.To], w)
		d[e.To][e.From] = min(d[e.To][e.From], w)
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}

	return d
}

func TestDijkstra_Errors(t *testing.T) {
	ctx := context.Background()
	g := triangle(t)

	_, err := dijkstra.Dijkstra(ctx, nil, nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Dijkstra(ctx, nil, g, 9)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.Dijkstra(ctx, nil, g, 0, dijkstra.WithGoal(9))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.Dijkstra(ctx, nil, g, 0, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, err = dijkstra.Dijkstra(ctx, nil, g, 0, dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
	assert.ErrorIs(t, err, step.ErrInvalidInput)

	neg := steptest.Graph(t, true, 3, [3]int{0, 1, 2}, [3]int{1, 2, -1})
	tr, rec := steptest.Tracer(t)
	_, err = dijkstra.Dijkstra(ctx, tr, neg, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Empty(t, rec.Events(), "validation happens before any event")
	assert.False(t, neg.Frozen())
}

func TestDijkstra_Trace(t *testing.T) {
	tr, rec := steptest.Tracer(t)
	res, err := dijkstra.Dijkstra(context.Background(), tr, triangle(t), 0)
	require.NoError(t, err)

	assert.Equal(t, map[int]int64{0: 0, 1: 1, 2: 3}, res.Dist)
	assert.Equal(t, map[int]int{1: 0, 2: 1}, res.Prev)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Nil(t, res.Path)

	assert.Equal(t, []step.Kind{
		step.KindPush,
		step.KindPop, step.KindVisit, step.KindRelax, step.KindRelax,
		step.KindPop, step.KindVisit, step.KindRelax,
		step.KindPop, step.KindVisit,
		step.KindPop, step.KindSkip,
		step.KindDone,
	}, rec.Kinds())

	evs := rec.Events()
	// After both relaxations from 0 the frontier is 1 (d=1) then 2 (d=4).
	assert.Equal(t, []int{1, 2}, evs[4].Graph.Frontier)
	// The improvement of 2 hides its stale entry.
	assert.Equal(t, []int{2}, evs[7].Graph.Frontier)
	assert.Equal(t, &core.Edge{From: 1, To: 2, Weight: 2}, evs[7].Graph.Edge)
	assert.Equal(t, []int{0, 1, 2}, rec.Last(t).Graph.Visited)
}

func TestDijkstra_FIFOTies(t *testing.T) {
	g := steptest.Graph(t, true, 4, [3]int{0, 3, 1}, [3]int{0, 1, 1}, [3]int{0, 2, 1})
	res, err := dijkstra.Dijkstra(context.Background(), nil, g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 1, 2}, res.Order)
}

func TestDijkstra_MatchesFloyd(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g, err := builder.RandomConnected(10, 12, builder.WithSeed(seed), builder.WithWeighted())
		require.NoError(t, err)
		want := floyd(g)
		for src := 0; src < g.NodeCount(); src++ {
			res, err := dijkstra.Dijkstra(context.Background(), nil, g, src)
			require.NoError(t, err)
			require.Len(t, res.Dist, g.NodeCount())
			for v, d := range res.Dist {
				assert.Equal(t, want[src][v], d, "seed %d %d→%d", seed, src, v)
			}

			// Finalization order is non-decreasing in distance.
			for i := 1; i < len(res.Order); i++ {
				assert.LessOrEqual(t, res.Dist[res.Order[i-1]], res.Dist[res.Order[i]])
			}
		}
	}
}

func TestDijkstra_UnweightedMatchesBFS(t *testing.T) {
	g, err := builder.RandomConnected(15, 10, builder.WithSeed(7))
	require.NoError(t, err)
	want, err := bfs.BFS(context.Background(), nil, g, 0)
	require.NoError(t, err)
	res, err := dijkstra.Dijkstra(context.Background(), nil, g, 0)
	require.NoError(t, err)
	for v, depth := range want.Depth {
		assert.Equal(t, int64(depth), res.Dist[v], "vertex %d", v)
	}
}

func TestDijkstra_Goal(t *testing.T) {
	tr, rec := steptest.Tracer(t)
	res, err := dijkstra.Dijkstra(context.Background(), tr, triangle(t), 0, dijkstra.WithGoal(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, []int{0, 1}, res.Path)
	assert.Equal(t, []int{0, 1}, rec.Last(t).Graph.Path)

	res, err = dijkstra.Dijkstra(context.Background(), nil, triangle(t), 0, dijkstra.WithGoal(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Path)
}

func TestDijkstra_Limits(t *testing.T) {
	line := steptest.Graph(t, true, 4, [3]int{0, 1, 2}, [3]int{1, 2, 2}, [3]int{2, 3, 2})
	res, err := dijkstra.Dijkstra(context.Background(), nil, line, 0, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{0: 0, 1: 2}, res.Dist)
	_, err = res.PathTo(3)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	g := steptest.Graph(t, true, 3, [3]int{0, 1, 5}, [3]int{0, 2, 1}, [3]int{2, 1, 3})
	res, err = dijkstra.Dijkstra(context.Background(), nil, g, 0, dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Dist[1])
	path, err := res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, path)
}

func TestDijkstra_Cancel(t *testing.T) {
	g := triangle(t)
	tr, rec := steptest.CancelAfter(t, 3)
	res, err := dijkstra.Dijkstra(context.Background(), tr, g, 0)
	assert.ErrorIs(t, err, step.ErrCancelled)
	require.NotNil(t, res)
	assert.Len(t, rec.Events(), 3)
	assert.Equal(t, []int{0}, res.Order)
	assert.False(t, g.Frozen(), "graph is released on cancellation")
}
