// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on graph.Graph.
//
// Options:
//
//	– Source:           starting vertex index (required, must be in [0, n)).
//	– Target:           vertex whose reachability is reported in Result.Reachable.
//	– ReturnPath:       if true, Result.Prev holds the predecessor of every vertex.
//	– MaxDistance:      optional cap on distances to explore; farther vertices stay unreached.
//	– InfEdgeThreshold: edges with cost >= this threshold are treated as impassable.
//	– Store:            open-set implementation (pqueue.KindHeap or pqueue.KindLinear).
//	– Logger:           optional *slog.Logger for Debug-level run tracing.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNoSource        if no Source option was given.
//	– ErrOutOfRange      if Source or Target lies outside [0, n) (also matches graph.ErrOutOfRange).
//	– ErrBadMaxDistance  if MaxDistance < 0 (panics in WithMaxDistance).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panics in WithInfEdgeThreshold).
//
// An unreachable destination is NOT an error: it is reported through
// Result.Reachable and Dist[v] == Infinity.
package dijkstra

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/pqueue"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that no source vertex was configured.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrOutOfRange aliases graph.ErrOutOfRange so callers can match either name.
	ErrOutOfRange = graph.ErrOutOfRange

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Infinity is the distance of a vertex that has not been reached.
const Infinity int64 = math.MaxInt64

// NoVertex marks an unset Source/Target and a missing predecessor.
const NoVertex = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex (NoVertex until set; required).
// Target           – queried destination (NoVertex: Reachable stays false).
// ReturnPath       – if true, return the predecessor slice; otherwise Prev is nil.
// MaxDistance      – optional cap on distances to explore. Must be ≥ 0. Default Infinity.
// InfEdgeThreshold – edges with cost ≥ this value are impassable. Must be > 0. Default Infinity.
// Store            – open-set implementation. Default pqueue.KindHeap.
// Logger           – Debug-level tracing; nil discards.
type Options struct {
	Source           int
	Target           int
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
	Store            pqueue.Kind
	Logger           *slog.Logger
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// Target sets the vertex whose reachability is reported in Result.Reachable.
// The full distance vector is computed regardless.
func Target(v int) Option {
	return func(o *Options) {
		o.Target = v
	}
}

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance stops relaxation beyond max: vertices whose shortest
// distance would exceed it are left unreached.
// Panics with ErrBadMaxDistance on negative values.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with cost ≥ threshold as absent.
// Panics with ErrBadInfThreshold on zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithStore selects the open-set implementation.
func WithStore(kind pqueue.Kind) Option {
	return func(o *Options) {
		o.Store = kind
	}
}

// WithLogger routes Debug-level run tracing to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct with no source, no target,
// no caps, heap store and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Source:           NoVertex,
		Target:           NoVertex,
		ReturnPath:       false,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
		Store:            pqueue.KindHeap,
		Logger:           nil,
	}
}

// Stats counts the work done by one run.
type Stats struct {
	Finalized    int // vertices moved to the closed set
	Relaxations  int // edges examined from finalized vertices to open ones
	Improvements int // relaxations that lowered a tentative distance
}

// Result is the outcome of one Dijkstra run.
type Result struct {
	// Source and Target echo the configured vertices (Target may be NoVertex).
	Source int
	Target int
	// Dist[v] is the shortest distance from Source, or Infinity if unreached.
	Dist []int64
	// Prev[v] is v's predecessor on a shortest path (NoVertex for Source and
	// unreached vertices). Nil unless WithReturnPath was given.
	Prev []int
	// Order lists vertices in the order they were finalized.
	Order []int
	// Reachable reports Dist[Target] < Infinity.
	Reachable bool
	// Stats counts the work performed.
	Stats Stats
}
