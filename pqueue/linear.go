package pqueue

// Linear is a Store backed by an unordered slice; ExtractMin scans it.
type Linear struct {
	labels []Label
}

// NewLinear returns an empty Linear store with room for capacity labels.
func NewLinear(capacity int) *Linear {
	if capacity < 0 {
		capacity = 0
	}

	return &Linear{labels: make([]Label, 0, capacity)}
}

// find returns the slice position of v's label, or -1.
func (s *Linear) find(v int) int {
	for i := range s.labels {
		if s.labels[i].Vertex == v {
			return i
		}
	}

	return -1
}

// Insert adds l unless its vertex is already present. O(n).
// Ids outside [0, MaxVertex] are rejected.
func (s *Linear) Insert(l Label) bool {
	if !validVertex(l.Vertex) || s.find(l.Vertex) >= 0 {
		return false
	}
	s.labels = append(s.labels, l)

	return true
}

// UpdateCost lowers the cost of v's label. O(n).
func (s *Linear) UpdateCost(v int, c int64) bool {
	i := s.find(v)
	if i < 0 || c >= s.labels[i].Cost {
		return false
	}
	s.labels[i].Cost = c

	return true
}

// ExtractMin removes the cheapest label by scanning every entry. O(n).
func (s *Linear) ExtractMin() (Label, error) {
	if len(s.labels) == 0 {
		return Label{}, ErrEmptyCollection
	}

	best := 0
	for i := 1; i < len(s.labels); i++ {
		if less(s.labels[i], s.labels[best]) {
			best = i
		}
	}
	l := s.labels[best]

	// Order is irrelevant: move the tail into the hole.
	last := len(s.labels) - 1
	s.labels[best] = s.labels[last]
	s.labels = s.labels[:last]

	return l, nil
}

// Contains reports whether v has a label. O(n).
func (s *Linear) Contains(v int) bool { return s.find(v) >= 0 }

// Cost returns v's tentative cost. O(n).
func (s *Linear) Cost(v int) (int64, bool) {
	i := s.find(v)
	if i < 0 {
		return 0, false
	}

	return s.labels[i].Cost, true
}

// IsEmpty reports whether the store holds no labels.
func (s *Linear) IsEmpty() bool { return len(s.labels) == 0 }

// Len returns the number of labels held.
func (s *Linear) Len() int { return len(s.labels) }
