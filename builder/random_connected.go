// SPDX-License-Identifier: MIT
// Package: stepviz/builder
//
// random_connected.go — RandomConnected(n, extra) generator.
//
// Model:
//   - n nodes placed uniformly inside the canvas (minus margin).
//   - Spanning tree: node i (i ≥ 1) attaches to a uniformly random j < i.
//   - Then up to `extra` additional edges by rejection sampling of random
//     pairs, at most extra×10 attempts; self-loops and duplicates rejected.
//   - Weighted mode: w = round(dist/10) + 1.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); extra ≥ 0 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Determinism:
//   - Draw order: all positions, then tree parents, then extra pairs.
//
// Complexity:
//   - Time: O(n + extra·deg) ; Space: O(n + extra).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stepviz/core"
)

const (
	methodRandomConnected      = "RandomConnected"
	minRandomConnectedVertices = 1
)

// RandomConnected returns a connected, simple, undirected graph of n nodes
// with n−1 tree edges plus at most extra more.
func RandomConnected(n, extra int, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	if n < minRandomConnectedVertices {
		return nil, builderErrorf(methodRandomConnected, "n=%d < min=%d: %w",
			n, minRandomConnectedVertices, ErrTooFewVertices)
	}
	if extra < 0 {
		return nil, builderErrorf(methodRandomConnected, "extra=%d < 0: %w", extra, ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomConnected, "%w", ErrNeedRandSource)
	}

	var gopts []core.GraphOption
	if cfg.weighted {
		gopts = append(gopts, core.WithWeighted())
	}
	g := core.NewGraph(gopts...)
	rng := cfg.rng

	// 1) Positions.
	spanX := cfg.width - 2*cfg.margin
	spanY := cfg.height - 2*cfg.margin
	nodes := make([]core.Node, n)
	for i := 0; i < n; i++ {
		x := cfg.margin + rng.Float64()*spanX
		y := cfg.margin + rng.Float64()*spanY
		id, err := g.AddNode(x, y)
		if err != nil {
			return nil, builderErrorf(methodRandomConnected, "AddNode(%d): %w", i, joinConstruct(err))
		}
		nodes[id] = core.Node{ID: id, X: x, Y: y}
	}

	connect := func(u, v int) error {
		var w int64
		if cfg.weighted {
			w = DistanceWeight(nodes[u], nodes[v])
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return builderErrorf(methodRandomConnected, "AddEdge(%d,%d): %w", u, v, joinConstruct(err))
		}

		return nil
	}

	// 2) Spanning tree.
	for i := 1; i < n; i++ {
		if err := connect(rng.Intn(i), i); err != nil {
			return nil, err
		}
	}

	// 3) Extra edges with bounded attempts.
	if n < 2 {
		return g, nil
	}
	added := 0
	for attempt := 0; attempt < extra*attemptsPerExtraEdge && added < extra; attempt++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v || g.HasEdge(u, v) {
			continue
		}
		if err := connect(u, v); err != nil {
			return nil, err
		}
		added++
	}

	return g, nil
}

// DistanceWeight is the weight RandomConnected assigns to the edge a–b:
// round(dist/10) + 1, always ≥ 1.
func DistanceWeight(a, b core.Node) int64 {
	return int64(math.Round(core.Distance(a, b)/weightScale)) + 1
}

func joinConstruct(err error) error {
	return fmt.Errorf("%w: %w", ErrConstructFailed, err)
}
