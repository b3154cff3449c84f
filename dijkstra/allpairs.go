package dijkstra

import "github.com/katalvlaran/graphkit/graph"

// AllPairs returns the n×n shortest-distance table of g computed with
// Floyd–Warshall, row-major: d[i*n+j] is the distance i→j, Infinity if j is
// unreachable from i. It is independent of the Dijkstra search and serves as
// a reference for it on small graphs.
//
// Loop order is fixed (k → i → j); only strict improvements are written.
// Time: O(n³); memory: O(n²).
func AllPairs(g *graph.Graph) ([]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()

	// 1) Seed from the edge list: diagonal 0, edges at cost, the rest Infinity.
	d := make([]int64, n*n)
	for i := range d {
		d[i] = Infinity
	}
	for v := 0; v < n; v++ {
		d[v*n+v] = 0
	}
	for _, e := range g.Edges() {
		d[e.From*n+e.To] = e.Cost
	}

	// 2) Relax through every intermediate k.
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = d[i*n+k]
			if ik == Infinity {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = d[baseK+j]
				if kj == Infinity || kj > Infinity-ik {
					continue
				}
				cand = ik + kj
				if cand < d[baseI+j] {
					d[baseI+j] = cand
				}
			}
		}
	}

	return d, nil
}
