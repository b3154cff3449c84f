// Package prim_kruskal computes minimum spanning trees on graph.Graph:
// Prim's algorithm as the primary method and Kruskal's algorithm as an
// independent cross-check for symmetric graphs.
//
// What & Why
//
//   - A spanning tree of a connected graph connects every vertex with n−1
//     edges; a minimum spanning tree does so with the smallest total cost.
//   - Typical uses: cheapest network layouts, clustering by cutting the
//     heaviest tree edges, lower bounds for tour problems.
//
// Algorithms Provided
//
//   - Prim(g, opts...) (*Tree, error)
//
//   - Strategy: grow one tree from Root (vertex 0 by default). Every vertex
//     outside the tree carries the cost of the cheapest edge into it; the
//     cheapest such vertex joins next (ties by lowest index). The fringe is
//     a pqueue.Store, heap by default.
//
//   - Complexity: O(V² + V log V) on the dense matrix, O(V) memory.
//
//   - Kruskal(g, opts...) (*Tree, error)
//
//   - Strategy: sort undirected edges by cost, keep every edge that joins two
//     union-find components, then orient the tree that contains Root.
//
//   - Requires g.Symmetric(); returns ErrInvalidGraph otherwise.
//
//   - Complexity: O(V² + E log E), O(V + E) memory.
//
//   - Compute(g, MSTOptions) dispatches on MSTOptions.Method.
//
// Result shape
//
//   - Tree.Parent[v] is the vertex through which v was attached; NoParent for
//     Root and for vertices the tree never reached.
//   - Tree.Cost[v] is the attaching edge cost; Infinity if unattached.
//   - Tree.Total sums Cost over attached vertices other than Root. Unattached
//     vertices never contribute, so a disconnected graph yields the minimum
//     tree of Root's component plus the list Tree.Unattached.
//
// Disconnected graphs
//
//   - Not an error. Check Tree.Spanning() or Tree.Unattached.
//
// Directed input
//
//   - Prim reads edges in the m→j direction only. On a non-symmetric graph the
//     result is the greedy tree over outgoing edges, which is what the
//     vertex-0 growth procedure defines; call g.Symmetrize() first for
//     undirected semantics.
//
// Example
//
//	g, _ := builder.Generate(20, 0.3, 1, 10, builder.WithUndirected(), builder.WithSeed(7))
//	tree, _ := prim_kruskal.Prim(g)
//	if !tree.Spanning() {
//		fmt.Println("not connected:", tree.Unattached)
//	}
//	fmt.Println(tree.Total)
package prim_kruskal
