// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree algorithm.
// It grows the tree from a root vertex, keeping the fringe in a pqueue.Store.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/pqueue"
)

// Prim computes a minimum spanning tree of g grown from the root vertex
// (vertex 0 unless WithRoot is given).
//
// Vertices move unvisited → fringe → in-tree. The fringe cost of a vertex is
// the cheapest edge from the tree to it seen so far.
//
// Error Conditions:
//   - ErrNilGraph   : g is nil.
//   - ErrOutOfRange : Root is not a vertex of g.
//
// A disconnected graph is not an error: vertices the tree never reaches are
// listed in Tree.Unattached and excluded from Tree.Total.
//
// Steps:
//  1. Validate g and Root.
//  2. Put Root in the fringe with cost 0.
//  3. While the fringe is not empty:
//     a. Extract the cheapest fringe vertex m (ties by lowest index); it joins the tree.
//     b. For each neighbor j of m not yet in the tree: if cost(m,j) < fringe cost of j,
//     record m as j's parent and lower j's fringe cost.
//  4. Sum the attach costs of attached vertices and list the rest.
//
// Edges are read in the direction m→j, so on a non-symmetric graph the result
// is the greedy tree over outgoing edges.
//
// Complexity: O(V² + V log V) time on the dense matrix with the heap store, O(V) memory.
func Prim(g *graph.Graph, opts ...Option) (*Tree, error) {
	return prim(g, resolve(opts))
}

func prim(g *graph.Graph, cfg MSTOptions) (*Tree, error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if !g.Has(cfg.Root) {
		return nil, fmt.Errorf("%w: root=%d with n=%d", ErrOutOfRange, cfg.Root, n)
	}
	log := logger(cfg.Logger)

	// 2. Seed the fringe with the root.
	t := newTree(n, cfg.Root)
	inTree := make([]bool, n)
	fringe := pqueue.New(cfg.Store, n)
	fringe.Insert(pqueue.Label{Vertex: cfg.Root, Cost: 0})

	// 3. Grow.
	var (
		lbl       pqueue.Label
		neighbors []int
		c         int64
		err       error
	)
	for {
		// 3a. Cheapest fringe vertex joins the tree.
		lbl, err = fringe.ExtractMin()
		if errors.Is(err, pqueue.ErrEmptyCollection) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("prim_kruskal: extract: %w", err)
		}
		m := lbl.Vertex
		inTree[m] = true
		t.Order = append(t.Order, m)

		// 3b. Offer m's edges to the vertices still outside.
		if neighbors, err = g.Neighbors(m); err != nil {
			return nil, fmt.Errorf("prim_kruskal: neighbors of %d: %w", m, err)
		}
		for _, j := range neighbors {
			if inTree[j] {
				continue
			}
			if c, err = g.Cost(m, j); err != nil {
				return nil, fmt.Errorf("prim_kruskal: cost %d→%d: %w", m, j, err)
			}
			t.Stats.Examined++
			if c >= t.Cost[j] {
				continue
			}
			t.Cost[j] = c
			t.Parent[j] = m
			if !fringe.Insert(pqueue.Label{Vertex: j, Cost: c}) {
				fringe.UpdateCost(j, c)
			}
			t.Stats.Improvements++
		}
	}

	// 4. Aggregate over attached vertices only.
	t.finish()
	log.Debug("prim finished",
		"root", cfg.Root,
		"attached", t.Stats.Attached,
		"unattached", len(t.Unattached),
		"total", t.Total,
	)

	return t, nil
}
