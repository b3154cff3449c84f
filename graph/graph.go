package graph

import (
	"fmt"
	"strings"
)

// Graph is a dense directed graph over vertices 0..n-1 with integer edge costs.
// cells holds the n×n cost matrix in row-major order; cells[i*n+j] is the cost
// of i→j or NoEdge.
type Graph struct {
	n       int
	density float64
	minCost int64
	maxCost int64
	cells   []int64
}

// New allocates an edgeless graph of order n.
//
// Validation (in order):
//  1. 1 <= n <= MaxOrder (ErrBadSize).
//  2. density in [0,1] (ErrBadDensity).
//  3. 1 <= min <= max (ErrBadCostRange).
//
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if n < 1 || n > MaxOrder {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}
	if cfg.Density < 0 || cfg.Density > 1 {
		return nil, fmt.Errorf("%w: density=%g", ErrBadDensity, cfg.Density)
	}
	if cfg.MinCost < 1 || cfg.MaxCost < cfg.MinCost {
		return nil, fmt.Errorf("%w: [%d,%d]", ErrBadCostRange, cfg.MinCost, cfg.MaxCost)
	}

	return &Graph{
		n:       n,
		density: cfg.Density,
		minCost: cfg.MinCost,
		maxCost: cfg.MaxCost,
		cells:   make([]int64, n*n),
	}, nil
}

// Order returns the number of vertices n.
func (g *Graph) Order() int { return g.n }

// Density returns the density the graph was configured with.
func (g *Graph) Density() float64 { return g.density }

// CostRange returns the admissible edge-cost interval [min, max].
func (g *Graph) CostRange() (min, max int64) { return g.minCost, g.maxCost }

// Has reports whether v is a valid vertex index.
func (g *Graph) Has(v int) bool { return v >= 0 && v < g.n }

// check validates a pair of indices and returns a wrapped ErrOutOfRange naming op.
func (g *Graph) check(op string, s, d int) error {
	if !g.Has(s) || !g.Has(d) {
		return fmt.Errorf("%w: %s(%d,%d) with n=%d", ErrOutOfRange, op, s, d, g.n)
	}

	return nil
}

// Cost returns the cost of edge s→d, or NoEdge if the vertices are not adjacent.
// Complexity: O(1).
func (g *Graph) Cost(s, d int) (int64, error) {
	if err := g.check("Cost", s, d); err != nil {
		return NoEdge, err
	}

	return g.cells[s*g.n+d], nil
}

// Adjacent reports whether an edge s→d exists.
// Complexity: O(1).
func (g *Graph) Adjacent(s, d int) (bool, error) {
	if err := g.check("Adjacent", s, d); err != nil {
		return false, err
	}

	return g.cells[s*g.n+d] > NoEdge, nil
}

// Neighbors returns every j with an edge v→j, in ascending index order.
// Complexity: O(n).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.check("Neighbors", v, v); err != nil {
		return nil, err
	}

	row := g.cells[v*g.n : (v+1)*g.n]
	out := make([]int, 0, g.n/4+1)
	for j, c := range row {
		if c > NoEdge {
			out = append(out, j)
		}
	}

	return out, nil
}

// OutDegree returns the number of edges leaving v.
func (g *Graph) OutDegree(v int) (int, error) {
	if err := g.check("OutDegree", v, v); err != nil {
		return 0, err
	}

	var deg int
	for _, c := range g.cells[v*g.n : (v+1)*g.n] {
		if c > NoEdge {
			deg++
		}
	}

	return deg, nil
}

// SetEdge stores edge s→d with the given cost, replacing any previous cost.
//
// Errors:
//   - ErrOutOfRange    if s or d is not a vertex.
//   - ErrSelfLoop      if s == d.
//   - ErrInvalidWeight if cost is outside CostRange().
func (g *Graph) SetEdge(s, d int, cost int64) error {
	if err := g.check("SetEdge", s, d); err != nil {
		return err
	}
	if s == d {
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, s)
	}
	if cost < g.minCost || cost > g.maxCost {
		return fmt.Errorf("%w: %d→%d cost=%d not in [%d,%d]",
			ErrInvalidWeight, s, d, cost, g.minCost, g.maxCost)
	}
	g.cells[s*g.n+d] = cost

	return nil
}

// RemoveEdge deletes edge s→d. It reports whether an edge was present.
func (g *Graph) RemoveEdge(s, d int) (bool, error) {
	if err := g.check("RemoveEdge", s, d); err != nil {
		return false, err
	}
	idx := s*g.n + d
	had := g.cells[idx] > NoEdge
	g.cells[idx] = NoEdge

	return had, nil
}

// Edges returns every stored edge ordered by (From, To) ascending.
// Complexity: O(n²).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.EdgeCount())
	var i, j int
	for i = 0; i < g.n; i++ {
		for j = 0; j < g.n; j++ {
			if c := g.cells[i*g.n+j]; c > NoEdge {
				edges = append(edges, Edge{From: i, To: j, Cost: c})
			}
		}
	}

	return edges
}

// EdgeCount returns the number of directed edges stored.
func (g *Graph) EdgeCount() int {
	var m int
	for _, c := range g.cells {
		if c > NoEdge {
			m++
		}
	}

	return m
}

// Symmetric reports whether cost(i,j) == cost(j,i) for every pair, i.e.
// whether the graph can be read as undirected.
func (g *Graph) Symmetric() bool {
	var i, j int
	for i = 0; i < g.n; i++ {
		for j = i + 1; j < g.n; j++ {
			if g.cells[i*g.n+j] != g.cells[j*g.n+i] {
				return false
			}
		}
	}

	return true
}

// Symmetrize makes the graph undirected in place: for every pair {i,j} that
// has at least one edge, both directions receive the cheaper of the present costs.
func (g *Graph) Symmetrize() {
	var i, j int
	var a, b, c int64
	for i = 0; i < g.n; i++ {
		for j = i + 1; j < g.n; j++ {
			a, b = g.cells[i*g.n+j], g.cells[j*g.n+i]
			switch {
			case a == NoEdge && b == NoEdge:
				continue
			case a == NoEdge:
				c = b
			case b == NoEdge:
				c = a
			default:
				c = min(a, b)
			}
			g.cells[i*g.n+j] = c
			g.cells[j*g.n+i] = c
		}
	}
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	cells := make([]int64, len(g.cells))
	copy(cells, g.cells)

	return &Graph{
		n:       g.n,
		density: g.density,
		minCost: g.minCost,
		maxCost: g.maxCost,
		cells:   cells,
	}
}

// Equal reports whether g and o have the same order and identical matrices.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.n != o.n {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}

	return true
}

// String renders the cost matrix, one row per line, cells separated by spaces.
func (g *Graph) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < g.n; i++ {
		for j = 0; j < g.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", g.cells[i*g.n+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
