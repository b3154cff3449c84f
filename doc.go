// Package graphkit generates weighted graphs and runs shortest-path and
// minimum-spanning-tree searches over them.
//
// What is graphkit?
//
//	A small, deterministic toolkit built around one dense adjacency matrix:
//		• graph/        - Graph: n×n cost matrix, 0 = no edge, costs ≥ 1
//		• builder/      - Generate: random graphs from density + cost range + seed
//		• pqueue/       - Store: open set with decrease-key (heap or linear scan)
//		• dijkstra/     - Dijkstra, Path, AllPairs (Floyd–Warshall oracle)
//		• prim_kruskal/ - Prim and Kruskal minimum spanning trees
//		• bfs/          - hop counts and reachability, ignoring costs
//		• graphio/      - text format: "n" then "i j c" lines
//		• simulate/     - Monte-Carlo averages over many generated graphs
//		• metrics/      - Prometheus recorder for runs and graph sizes
//		• cmd/graphkit  - CLI tying it all together
//
// Determinism
//
//	Every random choice flows through an injected source; the same seed
//	yields the same graph, path, tree and simulation report. Ties in the
//	open set break by (cost, vertex index).
//
// Unreachable vertices and disconnected graphs are reported as values
// (Result.Reachable, Tree.Unattached), never as errors.
//
// Quick start:
//
//	g, _ := builder.Generate(50, 0.2, 1, 10, builder.WithSeed(42))
//	res, _ := dijkstra.Path(g, 0, 49, dijkstra.WithReturnPath())
//	path, _ := res.PathTo(49)
//	tree, _ := prim_kruskal.Prim(g)
//	fmt.Println(res.Reachable, path, tree.Total, tree.Spanning())
package graphkit
