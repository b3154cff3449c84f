// Package dijkstra implements Dijkstra's shortest-path algorithm on graph.Graph.
//
// Vertices move through three states:
//
//	unvisited ──relax──▶ frontier (open set, finite tentative distance)
//	                          │ ExtractMin
//	                          ▼
//	                     finalized (distance provably optimal)
//
// Complexity (heap store):
//
//   - Time:  O(V² + V log V) on the dense matrix (Neighbors is O(V) per vertex).
//   - Space: O(V) for distances, predecessors, flags and the open set.
//
// Notes on implementation choices:
//
//   - Edge costs are >= 1 by graph.Graph construction, so no negative-weight scan is needed.
//   - The open set supports decrease-key, so each vertex holds at most one label.
//   - Edges with cost >= InfEdgeThreshold are skipped as impassable.
//   - Relaxations that would exceed MaxDistance are dropped.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/pqueue"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be set (ErrNoSource).
//  3. Source and, if set, Target must be in [0, n) (ErrOutOfRange).
//
// The loop ends when the frontier is empty or all n vertices are finalized.
// The full distance vector is returned regardless of Target.
func Dijkstra(g *graph.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Structural validation before any allocation.
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Source == NoVertex {
		return nil, ErrNoSource
	}
	n := g.Order()
	if !g.Has(cfg.Source) {
		return nil, fmt.Errorf("%w: source=%d with n=%d", ErrOutOfRange, cfg.Source, n)
	}
	if cfg.Target != NoVertex && !g.Has(cfg.Target) {
		return nil, fmt.Errorf("%w: target=%d with n=%d", ErrOutOfRange, cfg.Target, n)
	}

	// 3) Prepare per-run state; nothing here is shared with other runs.
	r := &runner{
		g:    g,
		cfg:  cfg,
		n:    n,
		dist: make([]int64, n),
		done: make([]bool, n),
		open: pqueue.New(cfg.Store, n),
		log:  cfg.Logger,
		res: &Result{
			Source: cfg.Source,
			Target: cfg.Target,
			Order:  make([]int, 0, n),
		},
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}
	if r.log == nil {
		r.log = slog.New(slog.DiscardHandler)
	}

	// 4) Initialize and run.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5) Assemble the result.
	res := r.res
	res.Dist = r.dist
	res.Prev = r.prev
	if cfg.Target != NoVertex {
		res.Reachable = r.dist[cfg.Target] < Infinity
	}
	r.log.Debug("dijkstra finished",
		"source", cfg.Source,
		"target", cfg.Target,
		"finalized", res.Stats.Finalized,
		"relaxations", res.Stats.Relaxations,
		"reachable", res.Reachable,
	)

	return res, nil
}

// Path is shorthand for Dijkstra(g, Source(src), Target(dst), opts...).
// Result.Reachable tells whether dst can be reached from src.
func Path(g *graph.Graph, src, dst int, opts ...Option) (*Result, error) {
	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, Source(src), Target(dst))

	return Dijkstra(g, all...)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g    *graph.Graph // read-only input
	cfg  Options      // resolved configuration
	n    int          // vertex count
	dist []int64      // best known distance per vertex
	prev []int        // predecessor per vertex; nil unless ReturnPath
	done []bool       // finalized flags (closed set)
	open pqueue.Store // frontier (open set)
	log  *slog.Logger
	res  *Result
}

// init sets every distance to Infinity and pushes the source with distance 0.
func (r *runner) init() {
	for v := 0; v < r.n; v++ {
		r.dist[v] = Infinity
		if r.prev != nil {
			r.prev[v] = NoVertex
		}
	}
	r.dist[r.cfg.Source] = 0
	r.open.Insert(pqueue.Label{Vertex: r.cfg.Source, Cost: 0})

	if r.log.Enabled(context.Background(), slog.LevelDebug) {
		r.log.Debug("dijkstra started", "source", r.cfg.Source, "n", r.n, "store", r.cfg.Store.String())
	}
}

// process repeatedly finalizes the cheapest frontier vertex and relaxes its
// outgoing edges until the frontier is empty or every vertex is finalized.
func (r *runner) process() error {
	var (
		lbl pqueue.Label
		err error
	)
	for r.res.Stats.Finalized < r.n {
		// 1) Take the cheapest frontier vertex; an empty frontier ends the run.
		lbl, err = r.open.ExtractMin()
		if errors.Is(err, pqueue.ErrEmptyCollection) {
			break
		}
		if err != nil {
			return fmt.Errorf("dijkstra: extract: %w", err)
		}

		// 2) Its distance is now final.
		r.done[lbl.Vertex] = true
		r.res.Order = append(r.res.Order, lbl.Vertex)
		r.res.Stats.Finalized++

		// 3) Relax edges to vertices that are not yet final.
		if err = r.relax(lbl.Vertex); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every edge m→k with k not finalized and lowers dist[k]
// when going through m is strictly shorter.
func (r *runner) relax(m int) error {
	neighbors, err := r.g.Neighbors(m)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", m, err)
	}

	var (
		k     int
		w, nd int64
	)
	for _, k = range neighbors {
		if r.done[k] {
			continue
		}
		if w, err = r.g.Cost(m, k); err != nil {
			return fmt.Errorf("dijkstra: cost %d→%d: %w", m, k, err)
		}

		// Impassable edges are invisible to the search.
		if w >= r.cfg.InfEdgeThreshold {
			continue
		}
		// Guard the addition: dist[m] is finite here, but huge costs could overflow.
		if w > Infinity-r.dist[m] {
			continue
		}
		nd = r.dist[m] + w
		if nd > r.cfg.MaxDistance {
			continue
		}

		r.res.Stats.Relaxations++
		if nd >= r.dist[k] {
			continue
		}

		// Strictly shorter: record it and make sure k sits in the frontier at nd.
		r.dist[k] = nd
		if r.prev != nil {
			r.prev[k] = m
		}
		if !r.open.Insert(pqueue.Label{Vertex: k, Cost: nd}) {
			r.open.UpdateCost(k, nd)
		}
		r.res.Stats.Improvements++
	}

	return nil
}
