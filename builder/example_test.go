package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/builder"
)

// ExampleGenerate draws the same graph twice from a fixed seed.
func ExampleGenerate() {
	a, err := builder.Generate(20, 0.2, 1, 10, builder.WithSeed(2024))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	b, _ := builder.Generate(20, 0.2, 1, 10, builder.WithSeed(2024))

	fmt.Println(a.Order(), a.Equal(b))
	// Output: 20 true
}

// ExampleGenerate_undirected produces a symmetric graph.
func ExampleGenerate_undirected() {
	g, _ := builder.Generate(8, 0.5, 1, 5, builder.WithSeed(3), builder.WithUndirected())
	fmt.Println(g.Symmetric())
	// Output: true
}
