package bfs_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/bfs"
	"github.com/katalvlaran/graphkit/builder"
)

// BenchmarkBFS_Dense measures BFS on a generated 500-vertex graph.
func BenchmarkBFS_Dense(b *testing.B) {
	g, err := builder.Generate(500, 0.2, 1, 10, builder.WithSeed(3))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
