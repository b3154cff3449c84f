// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// generate.go - implementation of Generate(n, density, minCost, maxCost).
//
// Canonical model:
//   • Directed:   for every ordered pair (i,j), i≠j, draw r∈[0,1); if r < density
//                 set cost(i,j) = NextInt(minCost, maxCost).
//   • Undirected: same trial over unordered pairs i<j; the drawn cost is stored
//                 in both directions.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ density ≤ 1 (else ErrInvalidProbability).
//   • 1 ≤ minCost ≤ maxCost (else ErrBadCostRange).
//   • Exactly one NextReal per trial and one NextInt per accepted trial, in
//     trial order; a fake RandomSource can therefore script the outcome.
//
// Complexity:
//   • Time:  O(n²) trials.
//   • Space: O(n²) for the matrix, O(1) extra.

package builder

import (
	"github.com/katalvlaran/graphkit/graph"
)

const (
	methodGenerate = "Generate"
	minVertices    = 1
	probMin        = 0.0
	probMax        = 1.0
)

// Generate returns a new graph.Graph of order n whose edges are sampled
// independently with probability density and costed uniformly in
// [minCost, maxCost]. The graph records density and cost range so that its
// invariants can be checked later.
func Generate(n int, density float64, minCost, maxCost int64, opts ...BuilderOption) (*graph.Graph, error) {
	// 1) Validate parameters before any allocation or draw.
	if n < minVertices {
		return nil, builderErrorf(methodGenerate, ErrTooFewVertices, "n=%d < min=%d", n, minVertices)
	}
	if density < probMin || density > probMax {
		return nil, builderErrorf(methodGenerate, ErrInvalidProbability,
			"density=%.6f not in [%.1f,%.1f]", density, probMin, probMax)
	}
	if minCost < 1 || maxCost < minCost {
		return nil, builderErrorf(methodGenerate, ErrBadCostRange, "[%d,%d]", minCost, maxCost)
	}

	// 2) Resolve options and allocate the empty graph.
	cfg := newBuilderConfig(opts...)
	g, err := graph.New(n,
		graph.WithDensity(density),
		graph.WithCostRange(minCost, maxCost),
	)
	if err != nil {
		return nil, builderErrorf(methodGenerate, err, "graph.New(%d)", n)
	}

	// 3) Bernoulli trial per admissible pair, stable order i asc, j asc.
	src := cfg.src
	var (
		i, j int
		c    int64
	)
	for i = 0; i < n; i++ {
		j = 0
		if cfg.undirected {
			j = i + 1
		}
		for ; j < n; j++ {
			if i == j {
				continue
			}
			if src.NextReal(0, 1) >= density {
				continue
			}
			c = src.NextInt(minCost, maxCost)
			if err = g.SetEdge(i, j, c); err != nil {
				return nil, builderErrorf(methodGenerate, err, "SetEdge(%d→%d, c=%d)", i, j, c)
			}
			if cfg.undirected {
				if err = g.SetEdge(j, i, c); err != nil {
					return nil, builderErrorf(methodGenerate, err, "SetEdge(%d→%d, c=%d)", j, i, c)
				}
			}
		}
	}

	return g, nil
}
