// Package pqueue provides the open/closed-set bookkeeping shared by the
// shortest-path and spanning-tree algorithms: a mutable collection of
// (vertex, tentative cost) labels with minimum extraction.
//
// Both Dijkstra and Prim repeatedly ask for "the cheapest vertex not yet
// finalized". Store captures that question behind one interface with two
// interchangeable implementations:
//
//   - Linear: an unordered slice scanned on every extraction.
//     Insert/UpdateCost O(1), ExtractMin O(n). Adequate for graphs of tens to
//     low hundreds of vertices and the easiest to reason about.
//   - Heap:   an indexed binary min-heap on top of container/heap.
//     Insert/UpdateCost/ExtractMin O(log n). Decrease-key is done in place via
//     heap.Fix, so no stale entries accumulate.
//
// Contract (identical for both):
//
//   - Insert adds a label unless one with the same Vertex is already present.
//   - UpdateCost only ever lowers a present label's cost; raising is a no-op.
//   - ExtractMin removes the cheapest label; ties go to the smaller Vertex.
//     On an empty store it returns ErrEmptyCollection, which callers treat as
//     "the run is over", not as a failure.
//
// Labels belong to the Store that holds them for one algorithm run; a Store
// is not safe for concurrent use and must not be shared between runs.
package pqueue
