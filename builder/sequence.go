// SPDX-License-Identifier: MIT
// Package: stepviz/builder
//
// sequence.go — integer sequences for sorting and searching demos.

package builder

const (
	methodRandomSequence = "RandomSequence"
	methodSortedSequence = "SortedSequence"
)

// RandomSequence returns n values drawn uniformly from [0, max).
// n ≥ 0 and max ≥ 1; the RNG must be configured.
func RandomSequence(n, max int, opts ...BuilderOption) ([]int, error) {
	cfg := newBuilderConfig(opts...)
	if n < 0 || max < 1 {
		return nil, builderErrorf(methodRandomSequence, "n=%d max=%d: %w", n, max, ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomSequence, "%w", ErrNeedRandSource)
	}

	out := make([]int, n)
	for i := range out {
		out[i] = cfg.rng.Intn(max)
	}

	return out, nil
}

// SortedSequence returns n non-decreasing values starting at 0, each step
// adding a random gap in [0, maxGap]. Binary search demos use it.
func SortedSequence(n, maxGap int, opts ...BuilderOption) ([]int, error) {
	cfg := newBuilderConfig(opts...)
	if n < 0 || maxGap < 0 {
		return nil, builderErrorf(methodSortedSequence, "n=%d maxGap=%d: %w", n, maxGap, ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return nil, builderErrorf(methodSortedSequence, "%w", ErrNeedRandSource)
	}

	out := make([]int, n)
	for i := 1; i < n; i++ {
		out[i] = out[i-1] + cfg.rng.Intn(maxGap+1)
	}

	return out, nil
}
