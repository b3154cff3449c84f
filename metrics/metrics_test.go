package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/dijkstra"
	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/prim_kruskal"
)

func chain(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.SetEdge(0, 1, 1))
	require.NoError(t, g.SetEdge(1, 2, 1))

	return g
}

func TestRecorder_ShortestPath(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	g := chain(t)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)

	r.ObserveGraph(g)
	r.ObserveShortestPath("heap", 3*time.Millisecond, res)
	r.ObserveShortestPath("heap", 2*time.Millisecond, res)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.runs.WithLabelValues(AlgorithmDijkstra, "heap")))
	assert.Equal(t, float64(2*res.Stats.Relaxations), testutil.ToFloat64(r.relaxations.WithLabelValues(AlgorithmDijkstra)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.unreached.WithLabelValues(AlgorithmDijkstra)))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.graphSize.WithLabelValues("vertices")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.graphSize.WithLabelValues("edges")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.duration))
}

func TestRecorder_SpanningTree(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	tree, err := prim_kruskal.Prim(chain(t))
	require.NoError(t, err)
	r.ObserveSpanningTree(AlgorithmPrim, "linear", time.Millisecond, tree)
	r.ObserveSpanningTree(AlgorithmKruskal, "heap", time.Millisecond, tree)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues(AlgorithmPrim, "linear")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues(AlgorithmKruskal, "none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.unreached.WithLabelValues(AlgorithmPrim)))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "graphkit_runs_total")
	assert.Contains(t, names, "graphkit_run_duration_seconds")
}

func TestRecorder_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	var are prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &are)
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveGraph(nil)
		r.ObserveShortestPath("heap", time.Second, &dijkstra.Result{})
		r.ObserveSpanningTree(AlgorithmPrim, "heap", time.Second, &prim_kruskal.Tree{})
	})
}
