// Package metrics exposes Prometheus instrumentation for graphkit runs.
//
// A Recorder owns its collectors and registers them on the Registerer it is
// given, so tests and embedding programs can use a private registry. All
// Observe methods are safe on a nil *Recorder and do nothing.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/graphkit/dijkstra"
	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/prim_kruskal"
)

// Algorithm label values.
const (
	AlgorithmDijkstra = "dijkstra"
	AlgorithmPrim     = prim_kruskal.MethodPrim
	AlgorithmKruskal  = prim_kruskal.MethodKruskal
)

// Recorder groups the graphkit collectors.
type Recorder struct {
	// runs counts completed algorithm runs
	runs *prometheus.CounterVec
	// duration tracks wall-clock time per run
	duration *prometheus.HistogramVec
	// relaxations counts edges examined by each algorithm
	relaxations *prometheus.CounterVec
	// unreached holds the unreached or unattached vertex count of the last run
	unreached *prometheus.GaugeVec
	// graphSize holds vertex and edge counts of the last observed graph
	graphSize *prometheus.GaugeVec
}

// NewRecorder builds the collectors and registers them on reg.
// A nil reg means prometheus.DefaultRegisterer.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphkit_runs_total",
				Help: "Total number of completed algorithm runs",
			},
			[]string{"algorithm", "store"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "graphkit_run_duration_seconds",
				Help:    "Wall-clock duration of algorithm runs",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{"algorithm"},
		),
		relaxations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphkit_relaxations_total",
				Help: "Total number of edges examined by algorithm runs",
			},
			[]string{"algorithm"},
		),
		unreached: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "graphkit_unreached_vertices",
				Help: "Vertices left unreached (shortest path) or unattached (spanning tree) by the last run",
			},
			[]string{"algorithm"},
		),
		graphSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "graphkit_graph_size",
				Help: "Vertex and edge count of the last observed graph",
			},
			[]string{"kind"},
		),
	}

	for _, c := range []prometheus.Collector{r.runs, r.duration, r.relaxations, r.unreached, r.graphSize} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return r, nil
}

// ObserveGraph records the size of g.
func (r *Recorder) ObserveGraph(g *graph.Graph) {
	if r == nil || g == nil {
		return
	}
	r.graphSize.WithLabelValues("vertices").Set(float64(g.Order()))
	r.graphSize.WithLabelValues("edges").Set(float64(g.EdgeCount()))
}

// ObserveShortestPath records one Dijkstra run that took d.
func (r *Recorder) ObserveShortestPath(store string, d time.Duration, res *dijkstra.Result) {
	if r == nil || res == nil {
		return
	}
	r.runs.WithLabelValues(AlgorithmDijkstra, store).Inc()
	r.duration.WithLabelValues(AlgorithmDijkstra).Observe(d.Seconds())
	r.relaxations.WithLabelValues(AlgorithmDijkstra).Add(float64(res.Stats.Relaxations))
	r.unreached.WithLabelValues(AlgorithmDijkstra).Set(float64(len(res.Unreachable())))
}

// ObserveSpanningTree records one MST run of the given method that took d.
// Kruskal does not use a store; its runs are labelled store="none".
func (r *Recorder) ObserveSpanningTree(method, store string, d time.Duration, t *prim_kruskal.Tree) {
	if r == nil || t == nil {
		return
	}
	if method == AlgorithmKruskal {
		store = "none"
	}
	r.runs.WithLabelValues(method, store).Inc()
	r.duration.WithLabelValues(method).Observe(d.Seconds())
	r.relaxations.WithLabelValues(method).Add(float64(t.Stats.Examined))
	r.unreached.WithLabelValues(method).Set(float64(len(t.Unattached)))
}
