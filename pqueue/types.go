package pqueue

import (
	"errors"
	"fmt"
)

// ErrEmptyCollection is returned by ExtractMin when no labels remain.
var ErrEmptyCollection = errors.New("pqueue: empty collection")

// MaxVertex is the largest vertex id a Store accepts. The heap's position
// index is sized by the largest id seen, so ids are bounded.
const MaxVertex = 1<<24 - 1

// validVertex reports whether v may be stored.
func validVertex(v int) bool { return v >= 0 && v <= MaxVertex }

// Label is a (vertex, tentative cost) pair tracked by a Store.
type Label struct {
	Vertex int   // vertex index; the label's identity
	Cost   int64 // tentative distance (Dijkstra) or attach cost (Prim)
}

// Same reports whether l and o refer to the same vertex, regardless of cost.
func (l Label) Same(o Label) bool {
	return l.Vertex == o.Vertex
}

// String renders the label as "vertex:cost".
func (l Label) String() string {
	return fmt.Sprintf("%d:%d", l.Vertex, l.Cost)
}

// less orders labels by cost, then by vertex for deterministic tie-breaking.
func less(a, b Label) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}

	return a.Vertex < b.Vertex
}

// Store is the open set used by a single algorithm run.
type Store interface {
	// Insert adds l unless a label for l.Vertex is already present or
	// l.Vertex lies outside [0, MaxVertex]. It reports whether l was added.
	Insert(l Label) bool
	// UpdateCost lowers the cost of the label for vertex v to c.
	// It reports whether the cost changed; unknown vertices and
	// non-improving costs leave the store untouched.
	UpdateCost(v int, c int64) bool
	// ExtractMin removes and returns the cheapest label (ties: smallest vertex).
	ExtractMin() (Label, error)
	// Contains reports whether a label for v is present.
	Contains(v int) bool
	// Cost returns the tentative cost for v and whether v is present.
	Cost(v int) (int64, bool)
	// IsEmpty reports whether no labels remain.
	IsEmpty() bool
	// Len returns the number of labels held.
	Len() int
}

// Kind selects a Store implementation.
type Kind int

const (
	// KindHeap selects the indexed binary heap (default).
	KindHeap Kind = iota
	// KindLinear selects the linear-scan slice.
	KindLinear
)

// String returns "heap" or "linear".
func (k Kind) String() string {
	switch k {
	case KindHeap:
		return "heap"
	case KindLinear:
		return "linear"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "heap" / "linear" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "heap", "":
		return KindHeap, nil
	case "linear":
		return KindLinear, nil
	default:
		return KindHeap, fmt.Errorf("pqueue: unknown store kind %q", s)
	}
}

// New returns an empty Store of the given kind sized for capacity labels.
// Unknown kinds fall back to the heap.
func New(kind Kind, capacity int) Store {
	if kind == KindLinear {
		return NewLinear(capacity)
	}

	return NewHeap(capacity)
}
