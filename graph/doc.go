// Package graph provides the dense, index-addressed weighted graph consumed by
// the shortest-path and spanning-tree algorithms of graphkit.
//
// Overview:
//
//   - A Graph of order n stores its edges in an n×n row-major cost matrix.
//     Vertices carry no identity object: the index in [0, n) IS the vertex.
//   - A zero cell means "no edge" (NoEdge); a positive cell is the edge cost.
//     Zero-cost edges are therefore not representable, and negative costs are
//     rejected on insertion with ErrInvalidWeight.
//   - The diagonal is always zero: self-loops are rejected with ErrSelfLoop.
//   - Every stored cost lies within the graph's cost range [min, max].
//
// Edges are directed in general (i→j does not imply j→i). Callers needing
// undirected semantics call Symmetrize once after construction, or build the
// graph through builder.Generate with builder.WithUndirected().
//
// Error handling (sentinel errors):
//
//   - ErrBadSize:       order n < 1 or n > MaxOrder.
//   - ErrBadDensity:    density outside [0,1].
//   - ErrBadCostRange:  min < 1 or max < min.
//   - ErrOutOfRange:    a vertex index outside [0, n) reached a query or mutator.
//   - ErrSelfLoop:      SetEdge(v, v, ·).
//   - ErrInvalidWeight: cost outside the graph's cost range.
//
// Out-of-range indices are a caller precondition violation: queries return a
// wrapped ErrOutOfRange instead of panicking, so algorithms can reject bad
// input at their boundary before any work starts.
//
// Thread safety:
//
//   - Reads (Neighbors, Cost, Adjacent, Edges, ...) never mutate and are safe
//     from any number of goroutines once construction is finished.
//   - SetEdge, RemoveEdge and Symmetrize are construction-time mutators and
//     must not race with readers.
//
// Complexity:
//
//   - Cost, Adjacent, SetEdge: O(1).
//   - Neighbors, OutDegree:    O(n).
//   - Edges, EdgeCount:        O(n²).
//   - Space:                   O(n²).
package graph
