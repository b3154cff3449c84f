package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/dijkstra"
	"github.com/katalvlaran/graphkit/graphio"
	"github.com/katalvlaran/graphkit/prim_kruskal"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func testConfig(t *testing.T, args ...string) Config {
	t.Helper()
	cfg, err := LoadConfig(args)
	require.NoError(t, err)

	return cfg
}

func TestRun_JSONPathAndTree(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "diamond.txt")
	require.NoError(t, os.WriteFile(in, []byte("4\n0 1 2\n1 2 3\n0 2 10\n2 3 1\n"), 0o644))

	cfg := testConfig(t, "-input", in, "-mode", "all", "-json", "-trials", "2", "-n", "8", "-seed", "5")
	cfg.Mode = modePath
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, quiet(), &out))

	var sum summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &sum))
	require.NotNil(t, sum.Path)
	assert.True(t, sum.Path.Reachable)
	require.NotNil(t, sum.Path.Distance)
	assert.Equal(t, int64(6), *sum.Path.Distance)
	assert.Equal(t, []int{0, 1, 2, 3}, sum.Path.Path)
	require.NotNil(t, sum.Path.Hops)
	assert.Equal(t, 2, *sum.Path.Hops, "0→2→3 is shorter in edges but dearer")
	assert.Nil(t, sum.Tree)

	cfg.Mode = modeMST
	out.Reset()
	require.NoError(t, run(context.Background(), cfg, quiet(), &out))
	sum = summary{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &sum))
	require.NotNil(t, sum.Tree)
	assert.Equal(t, int64(6), sum.Tree.Total)
	assert.True(t, sum.Tree.Spanning)
}

func TestRun_KruskalSymmetrizes(t *testing.T) {
	cfg := testConfig(t, "-mode", "mst", "-method", prim_kruskal.MethodKruskal, "-n", "10", "-density", "0.4", "-seed", "3", "-json")
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, quiet(), &out))

	var sum summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &sum))
	require.NotNil(t, sum.Tree)
	assert.Equal(t, prim_kruskal.MethodKruskal, sum.Tree.Method)
}

func TestRun_RendersAndSaves(t *testing.T) {
	saved := filepath.Join(t.TempDir(), "g.txt")
	cfg := testConfig(t, "-n", "9", "-density", "0.5", "-seed", "21", "-trials", "2", "-densities", "0.3", "-matrix", "-output", saved)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, quiet(), &out))

	text := out.String()
	for _, want := range []string{"Graph", "Shortest path", "Minimum spanning tree", "Simulation", "generated (seed 21)"} {
		assert.True(t, strings.Contains(text, want), "missing %q in output", want)
	}

	g, err := graphio.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, 9, g.Order())
}

func TestRun_SimulateOnly(t *testing.T) {
	cfg := testConfig(t, "-mode", "simulate", "-n", "6", "-trials", "3", "-densities", "0,1", "-seed", "2", "-json")
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, quiet(), &out))

	var sum summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &sum))
	require.NotNil(t, sum.Simulation)
	require.Len(t, sum.Simulation.Results, 2)
	assert.Zero(t, sum.Simulation.Results[0].MeanReachable)
	assert.Equal(t, 1.0, sum.Simulation.Results[1].MeanReachable)
	assert.Nil(t, sum.Path)
	assert.Zero(t, sum.Vertices)
}

func TestRun_BadSourceFails(t *testing.T) {
	cfg := testConfig(t, "-mode", "path", "-n", "5", "-src", "7", "-seed", "1")
	err := run(context.Background(), cfg, quiet(), io.Discard)
	assert.Error(t, err)
}

func TestRun_OnlyMinusOneMeansLastVertex(t *testing.T) {
	cfg := testConfig(t, "-mode", "path", "-n", "5", "-seed", "1", "-json")
	cfg.Target = -3
	err := run(context.Background(), cfg, quiet(), io.Discard)
	assert.ErrorIs(t, err, dijkstra.ErrOutOfRange)

	cfg.Target = lastVertex
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, quiet(), &out))
	var sum summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &sum))
	require.NotNil(t, sum.Path)
	assert.Equal(t, 4, sum.Path.Target)
}
