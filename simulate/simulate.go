// Package simulate runs Monte-Carlo experiments over random graphs: for each
// density it generates many graphs, runs Dijkstra from vertex 0 and Prim on
// the symmetrized graph, and averages the outcomes.
//
// Every trial draws from its own stream derived from Config.Seed, so a Report
// depends only on the Config and not on Workers or scheduling.
package simulate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/dijkstra"
	"github.com/katalvlaran/graphkit/metrics"
	"github.com/katalvlaran/graphkit/prim_kruskal"
)

// Run executes the experiment described by cfg.
//
// Cancellation is checked between trials. On cancellation Run returns the
// context error together with a Report aggregated from the trials that did
// finish. The first failing trial stops the remaining ones and its error is
// returned the same way.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if err := validate(cfg); err != nil {
		return Report{}, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = builder.DefaultSeed
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	start := time.Now()
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// 1) One slot per (density, trial); workers fill them independently.
	total := len(cfg.Densities) * cfg.Trials
	results := make([]trial, total)
	jobs := make(chan int)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if runCtx.Err() != nil {
					continue
				}
				density := cfg.Densities[idx/cfg.Trials]
				res, err := runTrial(cfg, density, uint64(idx))
				if err != nil {
					log.Debug("trial failed", "trial", idx, "density", density, "error", err)
					errOnce.Do(func() { firstErr = err })
					cancel()
					continue
				}
				results[idx] = res
			}
		}()
	}

	// 2) Feed jobs until done, cancelled, or a trial fails.
	var cancelled error
feed:
	for idx := 0; idx < total; idx++ {
		if runCtx.Err() != nil {
			cancelled = ctx.Err()
			break
		}
		select {
		case <-runCtx.Done():
			cancelled = ctx.Err()
			break feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	// 3) Aggregate in index order so float sums are reproducible.
	rep := Report{
		Vertices: cfg.Vertices,
		Seed:     cfg.Seed,
		Results:  make([]DensityResult, len(cfg.Densities)),
	}
	for di, d := range cfg.Densities {
		rep.Results[di] = aggregate(d, cfg.Vertices, results[di*cfg.Trials:(di+1)*cfg.Trials])
		log.Debug("density done",
			"density", d,
			"trials", rep.Results[di].Trials,
			"mean_path_cost", rep.Results[di].MeanPathCost,
			"mean_reachable", rep.Results[di].MeanReachable,
		)
	}
	rep.Elapsed = time.Since(start)

	if firstErr != nil {
		return rep, firstErr
	}
	if cancelled != nil {
		return rep, fmt.Errorf("simulate: %w", cancelled)
	}

	return rep, nil
}

// validate rejects configs that would make a trial fail or divide by zero.
func validate(cfg Config) error {
	switch {
	case cfg.Vertices < 2:
		return fmt.Errorf("%w: vertices=%d < 2", ErrBadConfig, cfg.Vertices)
	case len(cfg.Densities) == 0:
		return fmt.Errorf("%w: no densities", ErrBadConfig)
	case cfg.Trials < 1:
		return fmt.Errorf("%w: trials=%d < 1", ErrBadConfig, cfg.Trials)
	case cfg.MinCost < 1 || cfg.MaxCost < cfg.MinCost:
		return fmt.Errorf("%w: cost range [%d,%d]", ErrBadConfig, cfg.MinCost, cfg.MaxCost)
	}
	for _, d := range cfg.Densities {
		if d < 0 || d > 1 {
			return fmt.Errorf("%w: density %g not in [0,1]", ErrBadConfig, d)
		}
	}

	return nil
}

// runTrial generates one graph from its own stream and measures it.
func runTrial(cfg Config, density float64, stream uint64) (trial, error) {
	g, err := builder.Generate(cfg.Vertices, density, cfg.MinCost, cfg.MaxCost,
		builder.WithSource(builder.DeriveSource(cfg.Seed, stream)))
	if err != nil {
		return trial{}, fmt.Errorf("simulate: generate: %w", err)
	}
	cfg.Recorder.ObserveGraph(g)

	// Shortest paths from vertex 0.
	t0 := time.Now()
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithStore(cfg.Store))
	if err != nil {
		return trial{}, fmt.Errorf("simulate: dijkstra: %w", err)
	}
	cfg.Recorder.ObserveShortestPath(cfg.Store.String(), time.Since(t0), res)

	out := trial{done: true}
	var sum int64
	for v, d := range res.Dist {
		if v == 0 || d == dijkstra.Infinity {
			continue
		}
		sum += d
		out.reached++
	}
	if out.reached > 0 {
		out.pathMean = float64(sum) / float64(out.reached)
	}

	// Spanning tree of the undirected view.
	u := g.Clone()
	u.Symmetrize()
	t0 = time.Now()
	tree, err := prim_kruskal.Prim(u, prim_kruskal.WithStore(cfg.Store))
	if err != nil {
		return trial{}, fmt.Errorf("simulate: prim: %w", err)
	}
	cfg.Recorder.ObserveSpanningTree(metrics.AlgorithmPrim, cfg.Store.String(), time.Since(t0), tree)
	out.connected = tree.Spanning()
	out.treeCost = tree.Total

	return out, nil
}

// aggregate folds the finished trials of one density.
func aggregate(density float64, n int, trials []trial) DensityResult {
	r := DensityResult{Density: density}
	var (
		pathSum, reachSum, treeSum float64
		pathTrials                 int
	)
	for _, t := range trials {
		if !t.done {
			continue
		}
		r.Trials++
		reachSum += float64(t.reached) / float64(n-1)
		if t.reached > 0 {
			pathSum += t.pathMean
			pathTrials++
		}
		if t.connected {
			treeSum += float64(t.treeCost)
			r.Connected++
		}
	}
	if r.Trials > 0 {
		r.MeanReachable = reachSum / float64(r.Trials)
	}
	if pathTrials > 0 {
		r.MeanPathCost = pathSum / float64(pathTrials)
	}
	if r.Connected > 0 {
		r.MeanTreeCost = treeSum / float64(r.Connected)
	}

	return r
}
