package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/bfs"
	"github.com/katalvlaran/graphkit/graph"
)

// ExampleBFS counts hops on a small directed graph.
func ExampleBFS() {
	g, _ := graph.New(4)
	_ = g.SetEdge(0, 1, 7)
	_ = g.SetEdge(1, 2, 1)
	_ = g.SetEdge(0, 2, 9)

	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(2)
	fmt.Println(res.Order, res.Depth[2], path, res.Reached(3))
	// Output: [0 1 2] 1 [0 2] false
}
