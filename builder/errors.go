// SPDX-License-Identifier: MIT
// Package: stepviz/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Generators attach context with `%w`.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, extra, max) is
// smaller than the allowed minimum for the requested generator.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a generator requires an RNG and none
// was configured (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadGrid indicates an empty or non-rectangular grid.
var ErrBadGrid = errors.New("builder: grid must be non-empty and rectangular")

// ErrConstructFailed indicates that the core graph rejected a mutation
// the generator believed valid.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the generator name.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
