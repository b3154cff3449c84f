// Package bfs provides breadth-first search over a graph.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex edge count from start (Unreached if never seen)
//   - Parent: per-vertex predecessor in the BFS tree
//   - Supports an OnVisit hook that may abort the search with an error.
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Fewest-edge paths and reachable sets in O(V²) on the dense matrix.
//   - Cross-check for the weighted searches: a vertex has a finite
//     Dijkstra distance exactly when BFS reaches it, and Prim spans the
//     graph exactly when BFS on the symmetrized graph reaches every vertex.
//
// Determinism
//
//	graph.Neighbors returns indices in ascending order, and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|)
//
//   - Time:   O(V²)   (each row of the matrix is scanned once)
//   - Space:  O(V)    for the queue, Depth and Parent.
package bfs
