package builder_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/builder"
)

// BenchmarkGenerate measures sampling a 200-vertex graph at 20% density.
func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = builder.Generate(200, 0.2, 1, 10, builder.WithSeed(int64(i+1)))
	}
}
