package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphkit/graph"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *graph.Graph
	opts  BFSOptions
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil, graph.ErrOutOfRange for a bad start,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *graph.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Has(start) {
		return nil, fmt.Errorf("bfs: %w: start=%d with n=%d", graph.ErrOutOfRange, start, g.Order())
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = Unreached
	}

	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue records v at depth d with its parent and appends it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		if err := w.enqueueNeighbors(v); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(v int) error {
	neighbors, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", v, err)
	}
	next := w.res.Depth[v] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(v, nbr) {
			continue
		}
		if w.res.Depth[nbr] == Unreached {
			w.enqueue(nbr, next, v)
		}
	}

	return nil
}
