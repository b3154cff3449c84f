// Package prim_kruskal defines configuration options, result types and
// sentinel errors for minimum spanning tree computation on graph.Graph.
// It supports selecting between Prim and Kruskal via MSTOptions.
package prim_kruskal

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/pqueue"
)

// ErrNilGraph indicates that a nil *graph.Graph was passed in.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrOutOfRange aliases graph.ErrOutOfRange; returned when Root is not a vertex.
var ErrOutOfRange = graph.ErrOutOfRange

// ErrInvalidGraph indicates that Kruskal was given a graph whose matrix is
// not symmetric. Kruskal works on undirected edges only.
var ErrInvalidGraph = errors.New("prim_kruskal: Kruskal requires a symmetric graph")

// ErrUnknownMethod is returned by Compute for a Method it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using the PriorityStore).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// NoParent marks the root and every vertex that was never attached.
const NoParent = -1

// Infinity is the attach cost of a vertex that was never attached.
const Infinity int64 = math.MaxInt64

// MSTOptions configures which MST algorithm to run and how.
// Use DefaultOptions() to get a default setup (Prim from vertex 0).
//
// Fields:
//
//	Method string       – one of MethodPrim or MethodKruskal.
//	Root   int          – start vertex; Kruskal orients its forest from it.
//	Store  pqueue.Kind  – open-set implementation for Prim.
//	Logger *slog.Logger – Debug-level tracing; nil discards.
type MSTOptions struct {
	Method string
	Root   int
	Store  pqueue.Kind
	Logger *slog.Logger
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the start vertex.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithStore selects the open-set implementation used by Prim.
func WithStore(kind pqueue.Kind) Option {
	return func(opts *MSTOptions) {
		opts.Store = kind
	}
}

// WithLogger routes Debug-level run tracing to l.
func WithLogger(l *slog.Logger) Option {
	return func(opts *MSTOptions) {
		opts.Logger = l
	}
}

// DefaultOptions returns MSTOptions initialized for Prim from vertex 0
// with the heap store.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   0,
		Store:  pqueue.KindHeap,
	}
}

// Stats counts the work done by one run.
type Stats struct {
	Attached     int // vertices in the tree, root included
	Examined     int // candidate edges looked at
	Improvements int // Prim: fringe costs lowered
}

// Tree is a spanning tree (or, on a disconnected graph, the tree of the
// root's component) in parent-pointer form.
type Tree struct {
	// Root is the start vertex.
	Root int
	// Parent[v] is the vertex through which v was attached, NoParent for
	// Root and for unattached vertices.
	Parent []int
	// Cost[v] is the cost of the attaching edge Parent[v]→v: 0 for Root,
	// Infinity for unattached vertices.
	Cost []int64
	// Total sums Cost over attached vertices other than Root.
	Total int64
	// Unattached lists, ascending, the vertices the tree could not reach.
	Unattached []int
	// Order lists attached vertices in the order they joined the tree.
	Order []int
	// Stats counts the work performed.
	Stats Stats
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodPrim:    Prim(g, ...).
//	– MethodKruskal: Kruskal(g, ...).
//	– Otherwise:     ErrUnknownMethod.
func Compute(g *graph.Graph, opts MSTOptions) (*Tree, error) {
	switch opts.Method {
	case MethodPrim:
		return prim(g, opts)
	case MethodKruskal:
		return kruskal(g, opts)
	default:
		return nil, ErrUnknownMethod
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) MSTOptions {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// newTree allocates a Tree of order n with nothing attached yet.
func newTree(n, root int) *Tree {
	t := &Tree{
		Root:   root,
		Parent: make([]int, n),
		Cost:   make([]int64, n),
		Order:  make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		t.Parent[v] = NoParent
		t.Cost[v] = Infinity
	}
	t.Cost[root] = 0

	return t
}

// logger returns l or a discarding logger.
func logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}

	return l
}
