// SPDX-License-Identifier: MIT
// Package: stepviz/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil          (generators demand WithSeed/WithRand)
//   • canvas   = 600 × 400
//   • margin   = 30           (nodes keep off the canvas border)
//   • weighted = false
//   • diagonal = false       (grids use 4-connectivity)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators.
type builderConfig struct {
	// RNG for stochastic choices; nil means "not configured".
	rng *rand.Rand

	// Layout rectangle for node positions.
	width, height float64
	margin        float64

	// Derive weights from node distance.
	weighted bool

	// Grid connectivity includes diagonal neighbours.
	diagonal bool
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultCanvasWidth  = 600.0
	defaultCanvasHeight = 400.0
	defaultMargin       = 30.0

	// weightScale is the distance that adds one unit of weight.
	weightScale = 10.0

	// attemptsPerExtraEdge bounds the rejection sampling of extra edges.
	attemptsPerExtraEdge = 10
)

// newBuilderConfig constructs a config with defaults and applies all
// options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		width:  defaultCanvasWidth,
		height: defaultCanvasHeight,
		margin: defaultMargin,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	// Shrink the margin on tiny canvases so the usable area stays positive.
	if 2*cfg.margin >= cfg.width || 2*cfg.margin >= cfg.height {
		cfg.margin = 0
	}

	return cfg
}
