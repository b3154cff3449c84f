package graphio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/graphio"
)

func TestRead_Basic(t *testing.T) {
	in := `# diamond
4

0 1 2
1 2 3
0	2	10
2 3 1
`
	g, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 4, g.EdgeCount())
	c, err := g.Cost(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), c)

	lo, hi := g.CostRange()
	assert.Equal(t, int64(1), lo)
	assert.Equal(t, int64(10), hi)
	assert.InDelta(t, 4.0/12.0, g.Density(), 1e-12)
}

func TestRead_LaterLineReplacesCost(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("3\n0 1 50\n0 1 7\n"))
	require.NoError(t, err)

	c, err := g.Cost(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), c)
	lo, hi := g.CostRange()
	assert.Equal(t, []int64{7, 7}, []int64{lo, hi})
}

func TestRead_NoEdges(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("5\n"))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())
	assert.Zero(t, g.Density())

	lo, hi := g.CostRange()
	assert.Equal(t, graph.DefaultMinCost, lo)
	assert.Equal(t, graph.DefaultMaxCost, hi)
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
		line string
	}{
		{"empty", "", graphio.ErrMalformed, ""},
		{"only comments", "# nothing\n\n", graphio.ErrMalformed, ""},
		{"bad header", "four\n", graphio.ErrMalformed, "line 1"},
		{"zero order", "0\n", graph.ErrBadSize, "line 1"},
		{"huge order", "5000000000\n", graph.ErrBadSize, "line 1"},
		{"order above max", "# big\n16385\n0 1 2\n", graph.ErrBadSize, "line 2"},
		{"short edge", "3\n0 1\n", graphio.ErrMalformed, "line 2"},
		{"long edge", "3\n0 1 2 3\n", graphio.ErrMalformed, "line 2"},
		{"non-numeric", "3\n0 x 2\n", graphio.ErrMalformed, "line 2"},
		{"out of range", "3\n# c\n0 3 2\n", graph.ErrOutOfRange, "line 3"},
		{"negative vertex", "3\n-1 0 2\n", graph.ErrOutOfRange, "line 2"},
		{"self loop", "3\n1 1 2\n", graph.ErrSelfLoop, "line 2"},
		{"zero cost", "3\n0 1 0\n", graph.ErrInvalidWeight, "line 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
			if tc.line != "" {
				assert.Contains(t, err.Error(), tc.line)
			}
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	g, err := builder.Generate(15, 0.3, 1, 40, builder.WithSeed(8))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, g))

	back, err := graphio.Read(&buf)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

func TestWriteFile_RoundTrip(t *testing.T) {
	g, err := builder.Generate(6, 0.5, 2, 9, builder.WithSeed(4))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, graphio.WriteFile(path, g))

	back, err := graphio.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

func TestReadFile_Sample(t *testing.T) {
	g, err := graphio.ReadFile("testdata/sample20.txt")
	require.NoError(t, err)
	assert.Equal(t, 20, g.Order())
	assert.True(t, g.Symmetric())

	lo, hi := g.CostRange()
	assert.Equal(t, int64(1), lo)
	assert.Equal(t, int64(29), hi)

	_, err = graphio.ReadFile("testdata/missing.txt")
	assert.Error(t, err)
}

func TestWriteMatrix(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("3\n0 1 4\n2 0 9\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteMatrix(&buf, g))
	assert.Equal(t, "0 4 0\n0 0 0\n9 0 0\n", buf.String())
}
