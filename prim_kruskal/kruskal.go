// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It works on symmetric graphs and is mainly used to cross-check Prim.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphkit/graph"
)

// Kruskal computes a minimum spanning forest of a symmetric graph with a
// disjoint-set (union-find) using path compression and union by rank, then
// orients the tree containing Root into parent-pointer form.
//
// Error Conditions:
//   - ErrNilGraph     : g is nil.
//   - ErrOutOfRange   : Root is not a vertex of g.
//   - ErrInvalidGraph : g is not symmetric.
//
// Vertices outside Root's component are reported in Tree.Unattached, the same
// way Prim reports them, so Total is comparable between the two.
//
// Steps:
//  1. Validate g, Root and symmetry.
//  2. Collect undirected edges (From < To), stable-sorted by ascending cost.
//  3. Union-find over the sorted edges keeps every edge joining two components.
//  4. Walk the kept edges breadth-first from Root to fill Parent, Cost and Order.
//
// Complexity: O(V² + E log E) time (matrix scan dominates), O(V + E) memory.
func Kruskal(g *graph.Graph, opts ...Option) (*Tree, error) {
	return kruskal(g, resolve(opts))
}

func kruskal(g *graph.Graph, cfg MSTOptions) (*Tree, error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if !g.Has(cfg.Root) {
		return nil, fmt.Errorf("%w: root=%d with n=%d", ErrOutOfRange, cfg.Root, n)
	}
	if !g.Symmetric() {
		return nil, ErrInvalidGraph
	}
	log := logger(cfg.Logger)

	// 2. One copy of each undirected edge; Edges() is sorted by (From, To),
	//    so the stable sort breaks cost ties deterministically.
	all := g.Edges()
	edges := make([]graph.Edge, 0, len(all)/2)
	for _, e := range all {
		if e.From < e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Cost < edges[j].Cost
	})

	// 3. Union-find.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}

		return true
	}

	t := newTree(n, cfg.Root)
	adj := make([][]graph.Edge, n)
	kept := 0
	for _, e := range edges {
		t.Stats.Examined++
		if !union(e.From, e.To) {
			continue
		}
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], graph.Edge{From: e.To, To: e.From, Cost: e.Cost})
		if kept++; kept == n-1 {
			break
		}
	}

	// 4. Orient the root's tree.
	queue := []int{cfg.Root}
	t.Order = append(t.Order, cfg.Root)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range adj[u] {
			if t.Cost[e.To] < Infinity {
				continue
			}
			t.Parent[e.To] = u
			t.Cost[e.To] = e.Cost
			t.Order = append(t.Order, e.To)
			queue = append(queue, e.To)
		}
	}

	t.finish()
	log.Debug("kruskal finished",
		"root", cfg.Root,
		"forest_edges", kept,
		"attached", t.Stats.Attached,
		"total", t.Total,
	)

	return t, nil
}
