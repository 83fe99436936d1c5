// Package builder generates demo inputs for the animated algorithms:
// random connected graphs laid out on a canvas, and random integer
// sequences for the sorting and searching scenarios.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption: mutates builderConfig before generation.
//     – WithSeed / WithRand: deterministic randomness.
//     – WithCanvas: layout rectangle for node positions.
//     – WithWeighted: derive edge weights from node distance.
//   - Generators:
//     – RandomConnected(n, extra): spanning tree plus up to extra edges.
//     – RandomSequence(n, max): n values in [0, max).
//
// Guarantees:
//
//   - Same seed and options ⇒ identical output.
//   - RandomConnected graphs are connected, simple and loop-free.
//   - Weighted edges carry round(dist/10)+1 ≥ 1, so every shortest-path
//     and MST algorithm accepts them.
//   - Option constructors panic on meaningless values; generators never
//     panic and return sentinel errors instead.
package builder
