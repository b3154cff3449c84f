package pqueue

import "container/heap"

// absent marks a vertex with no entry in the heap.
const absent = -1

// Heap is a Store backed by an indexed binary min-heap.
//
// pos[v] holds the heap slot of vertex v's label (or absent), which lets
// UpdateCost find a label in O(1) and restore order with heap.Fix.
type Heap struct {
	items labelHeap
	pos   []int
}

// NewHeap returns an empty Heap sized for vertices 0..capacity-1.
// Larger vertex ids up to MaxVertex are accepted; the index grows on demand.
func NewHeap(capacity int) *Heap {
	if capacity < 0 {
		capacity = 0
	}
	h := &Heap{
		items: labelHeap{labels: make([]Label, 0, capacity)},
		pos:   make([]int, capacity),
	}
	for i := range h.pos {
		h.pos[i] = absent
	}
	h.items.pos = &h.pos

	return h
}

// slot returns the heap index of v, or absent.
func (h *Heap) slot(v int) int {
	if v < 0 || v >= len(h.pos) {
		return absent
	}

	return h.pos[v]
}

// grow extends the position index to cover vertex v.
func (h *Heap) grow(v int) {
	for len(h.pos) <= v {
		h.pos = append(h.pos, absent)
	}
}

// Insert adds l unless its vertex is already present. O(log n).
// Ids outside [0, MaxVertex] are rejected.
func (h *Heap) Insert(l Label) bool {
	if !validVertex(l.Vertex) || h.slot(l.Vertex) != absent {
		return false
	}
	h.grow(l.Vertex)
	heap.Push(&h.items, l)

	return true
}

// UpdateCost lowers v's cost in place and sifts it up. O(log n).
func (h *Heap) UpdateCost(v int, c int64) bool {
	i := h.slot(v)
	if i == absent || c >= h.items.labels[i].Cost {
		return false
	}
	h.items.labels[i].Cost = c
	heap.Fix(&h.items, i)

	return true
}

// ExtractMin pops the cheapest label. O(log n).
func (h *Heap) ExtractMin() (Label, error) {
	if h.items.Len() == 0 {
		return Label{}, ErrEmptyCollection
	}

	return heap.Pop(&h.items).(Label), nil
}

// Contains reports whether v has a label. O(1).
func (h *Heap) Contains(v int) bool { return h.slot(v) != absent }

// Cost returns v's tentative cost. O(1).
func (h *Heap) Cost(v int) (int64, bool) {
	i := h.slot(v)
	if i == absent {
		return 0, false
	}

	return h.items.labels[i].Cost, true
}

// IsEmpty reports whether the heap holds no labels.
func (h *Heap) IsEmpty() bool { return h.items.Len() == 0 }

// Len returns the number of labels held.
func (h *Heap) Len() int { return h.items.Len() }

// labelHeap implements heap.Interface over Labels and keeps the owner's
// position index in sync on every move.
type labelHeap struct {
	labels []Label
	pos    *[]int
}

// Len returns the number of labels in the heap.
func (q labelHeap) Len() int { return len(q.labels) }

// Less orders by cost, then vertex.
func (q labelHeap) Less(i, j int) bool { return less(q.labels[i], q.labels[j]) }

// Swap exchanges two labels and their recorded positions.
func (q labelHeap) Swap(i, j int) {
	q.labels[i], q.labels[j] = q.labels[j], q.labels[i]
	(*q.pos)[q.labels[i].Vertex] = i
	(*q.pos)[q.labels[j].Vertex] = j
}

// Push appends x (a Label) and records its slot. Called by heap.Push.
func (q *labelHeap) Push(x interface{}) {
	l := x.(Label)
	(*q.pos)[l.Vertex] = len(q.labels)
	q.labels = append(q.labels, l)
}

// Pop removes the last label and clears its slot. Called by heap.Pop.
func (q *labelHeap) Pop() interface{} {
	n := len(q.labels)
	l := q.labels[n-1]
	q.labels = q.labels[:n-1]
	(*q.pos)[l.Vertex] = absent

	return l
}
