package prim_kruskal

import "github.com/katalvlaran/graphkit/graph"

// Spanning reports whether every vertex was attached.
func (t *Tree) Spanning() bool { return len(t.Unattached) == 0 }

// Attached reports whether v is part of the tree.
func (t *Tree) Attached(v int) bool {
	return v >= 0 && v < len(t.Cost) && t.Cost[v] < Infinity
}

// Edges returns the tree edges Parent[v]→v in the order vertices joined.
func (t *Tree) Edges() []graph.Edge {
	out := make([]graph.Edge, 0, len(t.Order))
	for _, v := range t.Order {
		if t.Parent[v] == NoParent {
			continue
		}
		out = append(out, graph.Edge{From: t.Parent[v], To: v, Cost: t.Cost[v]})
	}

	return out
}

// finish fills Unattached and Total from Cost.
// Only attached vertices contribute to Total.
func (t *Tree) finish() {
	t.Unattached = make([]int, 0)
	t.Total = 0
	for v, c := range t.Cost {
		if c == Infinity {
			t.Unattached = append(t.Unattached, v)
			continue
		}
		if v != t.Root {
			t.Total += c
		}
	}
	t.Stats.Attached = len(t.Order)
}
