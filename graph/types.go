package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Graph constructors, queries and mutators.
var (
	// ErrBadSize indicates that a graph was requested with fewer than one
	// vertex or more than MaxOrder vertices.
	ErrBadSize = errors.New("graph: order must be in [1, MaxOrder]")

	// ErrBadDensity indicates that a density outside the closed interval [0,1] was supplied.
	ErrBadDensity = errors.New("graph: density must be in [0,1]")

	// ErrBadCostRange indicates an invalid cost range: min < 1 or max < min.
	ErrBadCostRange = errors.New("graph: invalid cost range")

	// ErrOutOfRange indicates that a vertex index lies outside [0, n).
	ErrOutOfRange = errors.New("graph: vertex index out of range")

	// ErrSelfLoop indicates an attempt to store an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrInvalidWeight indicates an edge cost outside the graph's cost range.
	// Since the range minimum is at least 1, this also covers zero and negative costs.
	ErrInvalidWeight = errors.New("graph: edge cost outside cost range")
)

// MaxOrder is the largest vertex count New accepts. The matrix holds
// MaxOrder² int64 cells (2 GiB), well below the point where n*n overflows.
const MaxOrder = 1 << 14

// NoEdge is the matrix value meaning "no edge between these vertices".
const NoEdge int64 = 0

// Defaults mirror the historical generator: ten vertices, 10% density, costs in [1,10].
const (
	DefaultDensity       = 0.1
	DefaultMinCost int64 = 1
	DefaultMaxCost int64 = 10
)

// Edge is a directed, weighted connection From → To.
type Edge struct {
	From int   // source vertex index
	To   int   // destination vertex index
	Cost int64 // edge cost, always >= 1 for stored edges
}

// Same reports whether e and o connect the same ordered pair of vertices.
// Cost is ignored; duplicate suppression during generation relies on this.
func (e Edge) Same(o Edge) bool {
	return e.From == o.From && e.To == o.To
}

// String renders the edge as "from→to(cost)".
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d(%d)", e.From, e.To, e.Cost)
}

// Options configures a Graph at construction time.
type Options struct {
	Density float64 // target edge density in [0,1]; informational for loaded graphs
	MinCost int64   // smallest admissible edge cost (>= 1)
	MaxCost int64   // largest admissible edge cost (>= MinCost)
}

// Option is a functional option for New.
type Option func(*Options)

// WithDensity records the density the graph was (or will be) generated with.
func WithDensity(d float64) Option {
	return func(o *Options) {
		o.Density = d
	}
}

// WithCostRange sets the admissible edge-cost interval [min, max].
func WithCostRange(min, max int64) Option {
	return func(o *Options) {
		o.MinCost = min
		o.MaxCost = max
	}
}

// DefaultOptions returns the historical defaults: density 0.1, costs in [1,10].
func DefaultOptions() Options {
	return Options{
		Density: DefaultDensity,
		MinCost: DefaultMinCost,
		MaxCost: DefaultMaxCost,
	}
}
