package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/graph"
)

// scriptedSource replays fixed real and int draws, recording how many were consumed.
type scriptedSource struct {
	reals []float64
	ints  []int64
	ri    int
	ii    int
}

func (s *scriptedSource) NextReal(lo, hi float64) float64 {
	r := s.reals[s.ri%len(s.reals)]
	s.ri++

	return lo + r*(hi-lo)
}

func (s *scriptedSource) NextInt(lo, hi int64) int64 {
	v := s.ints[s.ii%len(s.ints)]
	s.ii++

	return v
}

func TestGenerate_Validation(t *testing.T) {
	_, err := builder.Generate(0, 0.5, 1, 10)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Generate(5, -0.01, 1, 10)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Generate(5, 1.01, 1, 10)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Generate(5, 0.5, 0, 10)
	assert.ErrorIs(t, err, builder.ErrBadCostRange)

	_, err = builder.Generate(5, 0.5, 7, 3)
	assert.ErrorIs(t, err, builder.ErrBadCostRange)
}

func TestGenerate_ScriptedTrials(t *testing.T) {
	// n=3 ⇒ ordered trials (0,1) (0,2) (1,0) (1,2) (2,0) (2,1).
	// Accept trials 1, 4 and 6 (r < 0.5).
	src := &scriptedSource{
		reals: []float64{0.1, 0.9, 0.7, 0.2, 0.5, 0.3},
		ints:  []int64{4, 7, 9},
	}
	g, err := builder.Generate(3, 0.5, 1, 10, builder.WithSource(src))
	require.NoError(t, err)

	assert.Equal(t, 6, src.ri, "one real per ordered pair")
	assert.Equal(t, 3, src.ii, "one int per accepted pair")
	assert.Equal(t, []graph.Edge{
		{From: 0, To: 1, Cost: 4},
		{From: 1, To: 2, Cost: 7},
		{From: 2, To: 1, Cost: 9},
	}, g.Edges())
}

func TestGenerate_BoundaryDensities(t *testing.T) {
	g, err := builder.Generate(12, 0, 1, 10, builder.WithSeed(7))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount(), "density 0 yields no edges")

	g, err = builder.Generate(12, 1, 1, 10, builder.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, 12*11, g.EdgeCount(), "density 1 yields the complete digraph")
}

func TestGenerate_Invariants(t *testing.T) {
	const n = 40
	g, err := builder.Generate(n, 0.3, 3, 8, builder.WithSeed(99))
	require.NoError(t, err)

	assert.Equal(t, n, g.Order())
	assert.Equal(t, 0.3, g.Density())

	var i, j int
	for i = 0; i < n; i++ {
		nb, err := g.Neighbors(i)
		require.NoError(t, err)
		seen := make(map[int]bool, len(nb))
		for _, j = range nb {
			seen[j] = true
		}
		for j = 0; j < n; j++ {
			c, err := g.Cost(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, graph.NoEdge, c, "diagonal must be zero")
			}
			if c > 0 {
				assert.GreaterOrEqual(t, c, int64(3))
				assert.LessOrEqual(t, c, int64(8))
			}
			assert.Equal(t, c > 0, seen[j], "Neighbors/Cost mismatch at %d→%d", i, j)
		}
	}
}

func TestGenerate_SeedDeterminism(t *testing.T) {
	a, err := builder.Generate(30, 0.25, 1, 20, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.Generate(30, 0.25, 1, 20, builder.WithSeed(42))
	require.NoError(t, err)
	c, err := builder.Generate(30, 0.25, 1, 20, builder.WithSeed(43))
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same seed must reproduce the matrix")
	assert.False(t, a.Equal(c), "different seeds should diverge on 870 trials")
}

func TestGenerate_DefaultSourceIsDeterministic(t *testing.T) {
	a, err := builder.Generate(15, 0.4, 1, 10)
	require.NoError(t, err)
	b, err := builder.Generate(15, 0.4, 1, 10, builder.WithSeed(0))
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "no source and seed 0 both map to DefaultSeed")
}

func TestGenerate_Undirected(t *testing.T) {
	g, err := builder.Generate(25, 0.3, 1, 10, builder.WithSeed(5), builder.WithUndirected())
	require.NoError(t, err)
	assert.True(t, g.Symmetric())
	assert.Zero(t, g.EdgeCount()%2)
}

func TestRandomSource_Bounds(t *testing.T) {
	src := builder.NewRandomSource(11)
	var i int
	for i = 0; i < 1000; i++ {
		v := src.NextInt(10, 100)
		assert.GreaterOrEqual(t, v, int64(10))
		assert.LessOrEqual(t, v, int64(100))

		r := src.NextReal(0.1, 1.0)
		assert.GreaterOrEqual(t, r, 0.1)
		assert.Less(t, r, 1.0)
	}

	assert.Equal(t, int64(5), src.NextInt(5, 5), "degenerate interval")
	v := src.NextInt(9, 3)
	assert.True(t, v >= 3 && v <= 9, "swapped bounds are normalised")
}

func TestFromRand_MatchesSeededSource(t *testing.T) {
	a := builder.FromRand(rand.New(rand.NewSource(17)))
	b := builder.NewRandomSource(17)
	var i int
	for i = 0; i < 20; i++ {
		assert.Equal(t, a.NextInt(1, 1000), b.NextInt(1, 1000))
	}

	assert.Panics(t, func() { builder.FromRand(nil) })
	assert.Panics(t, func() { builder.WithSource(nil) })
}

func TestDeriveSource_Streams(t *testing.T) {
	a := builder.DeriveSource(42, 1)
	b := builder.DeriveSource(42, 1)
	c := builder.DeriveSource(42, 2)

	var same, diff int
	var i int
	for i = 0; i < 32; i++ {
		x, y, z := a.NextInt(0, 1<<40), b.NextInt(0, 1<<40), c.NextInt(0, 1<<40)
		if x == y {
			same++
		}
		if x != z {
			diff++
		}
	}
	assert.Equal(t, 32, same, "same stream must replay")
	assert.Greater(t, diff, 0, "different streams must diverge")
}
