// SPDX-License-Identifier: MIT
// Package: graphkit/builder

// Package builder populates graph.Graph instances with random edges.
//
// The package offers two building blocks:
//
//   - RandomSource: the narrow randomness contract the generator consumes,
//     NextInt(lo, hi) with inclusive bounds and NextReal(lo, hi) half-open.
//     NewRandomSource(seed) wraps math/rand; FromRand adopts an existing
//     *rand.Rand. Any deterministic fake satisfying the interface works too.
//   - Generate(n, density, minCost, maxCost, opts...): the Erdős–Rényi-like
//     generator. For every ordered pair (i, j), i ≠ j, a real r ∈ [0,1) is
//     drawn; when r < density the edge i→j receives a cost drawn uniformly
//     from [minCost, maxCost]. The result is directed in general.
//
// Options:
//
//   - WithSeed(seed):      seeded math/rand source (seed 0 maps to a fixed default).
//   - WithSource(src):     caller-supplied RandomSource (dependency injection).
//   - WithUndirected():    iterate unordered pairs i<j and store both directions
//     with the same cost, producing a symmetric graph.
//
// Determinism:
//
//   - Stable trial order: i ascending, then j ascending.
//   - Without WithSeed/WithSource the generator uses the fixed default seed,
//     so every run is reproducible unless the caller injects entropy.
//
// Errors (sentinels, check with errors.Is):
//
//   - ErrTooFewVertices     n < 1.
//   - ErrInvalidProbability density outside [0,1].
//   - ErrBadCostRange       minCost < 1 or maxCost < minCost.
//
// Complexity: O(n²) Bernoulli trials, O(n²) memory for the dense matrix.
package builder
