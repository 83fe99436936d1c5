// SPDX-License-Identifier: MIT
// Package: stepviz/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a generator by mutating builderConfig before
// generation begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCanvas sets the layout rectangle node positions are drawn from.
// Panics unless both sides are positive.
func WithCanvas(width, height float64) BuilderOption {
	if width <= 0 || height <= 0 {
		panic("builder: WithCanvas(width<=0 || height<=0)")
	}
	return func(c *builderConfig) {
		c.width, c.height = width, height
	}
}

// WithWeighted makes RandomConnected produce a weighted graph whose edge
// weights are round(distance/10)+1.
func WithWeighted() BuilderOption {
	return func(c *builderConfig) {
		c.weighted = true
	}
}

// WithDiagonal makes Grid connect each cell to its 8 neighbours instead of 4.
func WithDiagonal() BuilderOption {
	return func(c *builderConfig) {
		c.diagonal = true
	}
}
