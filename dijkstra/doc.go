// Package dijkstra computes single-source shortest paths on a graph.Graph
// with Dijkstra's algorithm.
//
// Overview:
//
//   - The search keeps an open set (frontier) of vertices with a finite
//     tentative distance and repeatedly finalizes the cheapest one.
//   - The open set is a pqueue.Store; callers pick the binary heap
//     (default) or the linear scan with WithStore.
//   - The full distance vector is always returned. Target only selects
//     which vertex Result.Reachable reports on.
//
// Usage:
//
//	g, _ := builder.Generate(20, 0.1, 1, 10, builder.WithSeed(42))
//	res, err := dijkstra.Path(g, 0, 19, dijkstra.WithReturnPath())
//	if err != nil {
//		// invalid input
//	}
//	if res.Reachable {
//		path, _ := res.PathTo(19)
//		fmt.Println(res.Dist[19], path)
//	}
//
// Invariants of a Result:
//
//   - Dist[Source] == 0.
//   - Order is non-decreasing in Dist.
//   - For every finalized u and every edge u→v, Dist[v] <= Dist[u] + cost(u, v)
//     (unless the edge was cut by InfEdgeThreshold or MaxDistance).
//   - Dist[v] == Infinity exactly for the vertices listed by Unreachable().
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:   nil *graph.Graph.
//   - ErrNoSource:   Source option missing.
//   - ErrOutOfRange: Source or Target outside [0, n).
//
// Concurrency:
//
//   - A run allocates all of its state; it only reads the graph. Several
//     runs may share one *graph.Graph as long as nobody mutates it.
package dijkstra
