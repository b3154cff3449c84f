// Command graphkit generates or loads a weighted graph and reports shortest
// paths, a minimum spanning tree, or a Monte-Carlo summary over many graphs.
//
// Configuration comes from GRAPHKIT_* environment variables, overridden by
// flags; run with -h for the list.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/graphkit/bfs"
	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/dijkstra"
	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/graphio"
	"github.com/katalvlaran/graphkit/metrics"
	"github.com/katalvlaran/graphkit/prim_kruskal"
	"github.com/katalvlaran/graphkit/simulate"
)

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, errorStyle.Render("graphkit: "+err.Error()))
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("run_failed", "error", err)
		os.Exit(1)
	}
}

// summary is the -json rendering of a run.
type summary struct {
	Seed       int64            `json:"seed"`
	Vertices   int              `json:"vertices,omitempty"`
	Edges      int              `json:"edges,omitempty"`
	Path       *pathSummary     `json:"path,omitempty"`
	Tree       *treeSummary     `json:"tree,omitempty"`
	Simulation *simulate.Report `json:"simulation,omitempty"`
}

type pathSummary struct {
	Source      int           `json:"source"`
	Target      int           `json:"target"`
	Reachable   bool          `json:"reachable"`
	Distance    *int64        `json:"distance,omitempty"`
	Path        []int         `json:"path,omitempty"`
	Hops        *int          `json:"hops,omitempty"`
	Unreachable []int         `json:"unreachable"`
	Elapsed     time.Duration `json:"elapsed"`
}

type treeSummary struct {
	Method     string        `json:"method"`
	Total      int64         `json:"total"`
	Spanning   bool          `json:"spanning"`
	Parent     []int         `json:"parent"`
	Unattached []int         `json:"unattached"`
	Elapsed    time.Duration `json:"elapsed"`
}

func run(ctx context.Context, cfg Config, log *slog.Logger, out io.Writer) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Info("system_started", "mode", cfg.Mode, "seed", cfg.Seed, "store", cfg.Store.String())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	var srv *http.Server
	if cfg.MetricsAddr != "" {
		srv = serveMetrics(cfg.MetricsAddr, reg, log)
	}

	sum := summary{Seed: cfg.Seed}
	if cfg.Mode != modeSimulate {
		if err = runSingle(cfg, log, rec, out, &sum); err != nil {
			return err
		}
	}
	if cfg.Mode == modeSimulate || cfg.Mode == modeAll {
		rep, err := simulate.Run(ctx, simulate.Config{
			Vertices:  cfg.Vertices,
			Densities: cfg.Densities,
			Trials:    cfg.Trials,
			MinCost:   cfg.MinCost,
			MaxCost:   cfg.MaxCost,
			Seed:      cfg.Seed,
			Workers:   simulate.DefaultConfig().Workers,
			Store:     cfg.Store,
			Recorder:  rec,
			Logger:    log,
		})
		if err != nil {
			return fmt.Errorf("simulate: %w", err)
		}
		sum.Simulation = &rep
		if !cfg.JSON {
			fmt.Fprintln(out, renderSimulation(rep))
		}
	}

	if cfg.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err = enc.Encode(sum); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}

	if srv != nil {
		log.Info("serving_metrics", "addr", cfg.MetricsAddr)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err = srv.Shutdown(shutdownCtx); err != nil {
			log.Error("metrics_shutdown_failed", "error", err)
		}
	}
	log.Info("shutdown_complete")

	return nil
}

// runSingle builds or loads one graph and runs the requested algorithms on it.
func runSingle(cfg Config, log *slog.Logger, rec *metrics.Recorder, out io.Writer, sum *summary) error {
	g, origin, err := obtainGraph(cfg)
	if err != nil {
		return err
	}
	rec.ObserveGraph(g)
	sum.Vertices, sum.Edges = g.Order(), g.EdgeCount()
	log.Info("graph_ready", "origin", origin, "n", g.Order(), "edges", g.EdgeCount())

	if cfg.Output != "" && cfg.Input == "" {
		if err = graphio.WriteFile(cfg.Output, g); err != nil {
			return err
		}
		log.Info("graph_saved", "path", cfg.Output)
	}
	if !cfg.JSON {
		fmt.Fprintln(out, renderGraph(g, origin, cfg.ShowMatrix))
	}

	if cfg.Mode == modePath || cfg.Mode == modeAll {
		target := cfg.Target
		if target == lastVertex {
			target = g.Order() - 1
		}
		start := time.Now()
		res, err := dijkstra.Path(g, cfg.Source, target,
			dijkstra.WithReturnPath(),
			dijkstra.WithStore(cfg.Store),
			dijkstra.WithLogger(log),
		)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		rec.ObserveShortestPath(cfg.Store.String(), elapsed, res)

		ps := &pathSummary{
			Source:      cfg.Source,
			Target:      target,
			Reachable:   res.Reachable,
			Unreachable: res.Unreachable(),
			Elapsed:     elapsed,
		}
		if res.Reachable {
			d := res.Dist[target]
			ps.Distance = &d
			ps.Path, _ = res.PathTo(target)

			// Fewest edges, ignoring cost, for comparison with the cheapest path.
			hops, err := bfs.BFS(g, cfg.Source)
			if err != nil {
				return err
			}
			if hops.Reached(target) {
				h := hops.Depth[target]
				ps.Hops = &h
			}
		}
		sum.Path = ps
		if !cfg.JSON {
			fmt.Fprintln(out, renderPath(ps))
		}
	}

	if cfg.Mode == modeMST || cfg.Mode == modeAll {
		tg := g
		if cfg.Method == prim_kruskal.MethodKruskal && !g.Symmetric() {
			tg = g.Clone()
			tg.Symmetrize()
			log.Warn("graph_symmetrized", "reason", "kruskal needs undirected edges")
		}
		start := time.Now()
		tree, err := prim_kruskal.Compute(tg, prim_kruskal.MSTOptions{
			Method: cfg.Method,
			Root:   0,
			Store:  cfg.Store,
			Logger: log,
		})
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		rec.ObserveSpanningTree(cfg.Method, cfg.Store.String(), elapsed, tree)

		ts := &treeSummary{
			Method:     cfg.Method,
			Total:      tree.Total,
			Spanning:   tree.Spanning(),
			Parent:     tree.Parent,
			Unattached: tree.Unattached,
			Elapsed:    elapsed,
		}
		sum.Tree = ts
		if !cfg.JSON {
			fmt.Fprintln(out, renderTree(ts, tree.Edges()))
		}
	}

	return nil
}

// obtainGraph loads cfg.Input or generates a graph from the config.
func obtainGraph(cfg Config) (*graph.Graph, string, error) {
	if cfg.Input != "" {
		g, err := graphio.ReadFile(cfg.Input)
		if err != nil {
			return nil, "", err
		}
		return g, cfg.Input, nil
	}

	opts := []builder.BuilderOption{builder.WithSeed(cfg.Seed)}
	if cfg.Undirected {
		opts = append(opts, builder.WithUndirected())
	}
	g, err := builder.Generate(cfg.Vertices, cfg.Density, cfg.MinCost, cfg.MaxCost, opts...)
	if err != nil {
		return nil, "", err
	}
	return g, fmt.Sprintf("generated (seed %d)", cfg.Seed), nil
}

func serveMetrics(addr string, reg *prometheus.Registry, log *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics_server_failed", "error", err)
		}
	}()
	return srv
}
