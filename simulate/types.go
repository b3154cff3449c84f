package simulate

import (
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/metrics"
	"github.com/katalvlaran/graphkit/pqueue"
)

// ErrBadConfig indicates a Config that cannot drive a simulation.
var ErrBadConfig = errors.New("simulate: invalid config")

// Config describes one Monte-Carlo experiment.
type Config struct {
	Vertices  int         // order of every generated graph, >= 2
	Densities []float64   // one experiment per density, each in [0,1]
	Trials    int         // graphs per density, >= 1
	MinCost   int64       // edge cost range lower bound, >= 1
	MaxCost   int64       // edge cost range upper bound, >= MinCost
	Seed      int64       // base seed; trial streams are derived from it (0 ⇒ builder.DefaultSeed)
	Workers   int         // concurrent trials; < 1 means 1
	Store     pqueue.Kind // open-set implementation for both algorithms
	Recorder  *metrics.Recorder
	Logger    *slog.Logger
}

// DefaultConfig returns the classic setup: 50 vertices at 20% and 40%
// density, costs in [1,10], one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Vertices:  50,
		Densities: []float64{0.2, 0.4},
		Trials:    100,
		MinCost:   1,
		MaxCost:   10,
		Seed:      builder.DefaultSeed,
		Workers:   runtime.NumCPU(),
		Store:     pqueue.KindHeap,
	}
}

// DensityResult aggregates the trials run at one density.
type DensityResult struct {
	Density float64 `json:"density"`
	// Trials is the number of graphs generated and searched.
	Trials int `json:"trials"`
	// MeanPathCost averages, over trials that reached at least one vertex,
	// the mean shortest distance from vertex 0 to the vertices it reached.
	MeanPathCost float64 `json:"mean_path_cost"`
	// MeanReachable is the average fraction of the other vertices reached from 0.
	MeanReachable float64 `json:"mean_reachable"`
	// MeanTreeCost averages the spanning tree cost of the symmetrized graph
	// over the trials where it was connected.
	MeanTreeCost float64 `json:"mean_tree_cost"`
	// Connected counts trials whose symmetrized graph was connected.
	Connected int `json:"connected"`
}

// Report is the outcome of Run.
type Report struct {
	Vertices int             `json:"vertices"`
	Seed     int64           `json:"seed"`
	Results  []DensityResult `json:"results"`
	Elapsed  time.Duration   `json:"elapsed"`
}

// trial is the per-graph outcome before aggregation.
type trial struct {
	done      bool
	pathMean  float64 // valid when reached > 0
	reached   int
	treeCost  int64
	connected bool
}
