package dijkstra

// Distance returns the shortest distance to v and whether v was reached.
// Out-of-range vertices report (Infinity, false).
func (r *Result) Distance(v int) (int64, bool) {
	if v < 0 || v >= len(r.Dist) {
		return Infinity, false
	}

	return r.Dist[v], r.Dist[v] < Infinity
}

// ReachableTo reports whether v was reached from Source.
func (r *Result) ReachableTo(v int) bool {
	_, ok := r.Distance(v)

	return ok
}

// Unreachable lists, in ascending order, every vertex that was not reached.
func (r *Result) Unreachable() []int {
	out := make([]int, 0)
	for v, d := range r.Dist {
		if d == Infinity {
			out = append(out, v)
		}
	}

	return out
}

// PathTo reconstructs a shortest path Source → … → v.
// It returns (nil, false) when v was not reached or the run was made
// without WithReturnPath.
func (r *Result) PathTo(v int) ([]int, bool) {
	if r.Prev == nil || !r.ReachableTo(v) {
		return nil, false
	}

	// Walk predecessors back to the source, then reverse in place.
	path := []int{v}
	for cur := v; cur != r.Source; {
		cur = r.Prev[cur]
		if cur == NoVertex {
			return nil, false
		}
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
