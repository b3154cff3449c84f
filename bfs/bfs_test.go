package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/graphkit/bfs"
	"github.com/katalvlaran/graphkit/graph"
)

// build creates an n-vertex graph with the listed directed unit edges.
func build(t *testing.T, n int, edges ...[2]int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	if err != nil {
		t.Fatalf("graph.New(%d): %v", n, err)
	}
	for _, e := range edges {
		if err = g.SetEdge(e[0], e[1], 1); err != nil {
			t.Fatalf("SetEdge(%d,%d): %v", e[0], e[1], err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := build(t, 2)
	if _, err := bfs.BFS(g, 2); !errors.Is(err, graph.ErrOutOfRange) {
		t.Errorf("start out of range: want ErrOutOfRange, got %v", err)
	}
	if _, err := bfs.BFS(g, -1); !errors.Is(err, graph.ErrOutOfRange) {
		t.Errorf("negative start: want ErrOutOfRange, got %v", err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	res, err := bfs.BFS(build(t, 1), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Depth[0] != 0 || res.Parent[0] != bfs.Unreached {
		t.Errorf("Depth[0]=%d Parent[0]=%d; want 0 and Unreached", res.Depth[0], res.Parent[0])
	}
}

// TestBFS_Layers checks depths, parents and ascending tie order.
//
//	0 → 1 → 3
//	0 → 2 → 3 → 4
func TestBFS_Layers(t *testing.T) {
	g := build(t, 6, [2]int{0, 2}, [2]int{0, 1}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 4})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if want := []int{0, 1, 2, 3, 4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 1, 2, 3, bfs.Unreached}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if want := []int{bfs.Unreached, 0, 0, 1, 3, bfs.Unreached}; !reflect.DeepEqual(res.Parent, want) {
		t.Errorf("Parent = %v; want %v", res.Parent, want)
	}
	if res.Reached(5) || !res.Reached(4) || res.Reached(99) {
		t.Errorf("Reached mismatch: 5=%v 4=%v 99=%v", res.Reached(5), res.Reached(4), res.Reached(99))
	}

	path, err := res.PathTo(4)
	if err != nil {
		t.Fatalf("PathTo(4): %v", err)
	}
	if want := []int{0, 1, 3, 4}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(4) = %v; want %v", path, want)
	}
	if _, err = res.PathTo(5); err == nil {
		t.Error("PathTo(5): want error for unreached vertex")
	}
}

// TestBFS_Directed ensures edges are followed only in their direction.
func TestBFS_Directed(t *testing.T) {
	g := build(t, 3, [2]int{1, 0}, [2]int{1, 2})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_MaxDepth stops exploring past the limit.
func TestBFS_MaxDepth(t *testing.T) {
	g := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Reached(3) {
		t.Error("vertex 3 lies beyond MaxDepth")
	}
}

// TestBFS_FilterNeighbor prunes a single edge.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := build(t, 3, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2})
	res, err := bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(curr, nbr int) bool {
		return !(curr == 0 && nbr == 2)
	}))
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if res.Depth[2] != 2 || res.Parent[2] != 1 {
		t.Errorf("Depth[2]=%d Parent[2]=%d; want 2 via 1", res.Depth[2], res.Parent[2])
	}
}

// TestBFS_OnVisitAbort propagates the hook error.
func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	g := build(t, 3, [2]int{0, 1}, [2]int{1, 2})
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want hook error, got %v", err)
	}
}

// TestBFS_Cancelled returns the context error.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(build(t, 2, [2]int{0, 1}), 0, bfs.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
