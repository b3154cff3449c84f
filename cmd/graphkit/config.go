package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphkit/pqueue"
	"github.com/katalvlaran/graphkit/prim_kruskal"
)

const (
	defaultMode      = "all"
	defaultVertices  = 50
	defaultDensity   = 0.2
	defaultMinCost   = 1
	defaultMaxCost   = 10
	defaultTrials    = 100
	defaultDensities = "0.2,0.4"
	defaultLogLevel  = "info"
)

// Run modes.
const (
	modePath     = "path"
	modeMST      = "mst"
	modeSimulate = "simulate"
	modeAll      = "all"
)

// lastVertex as -dst selects the graph's highest-numbered vertex.
const lastVertex = -1

type Config struct {
	Mode        string
	Input       string // graph file to load instead of generating
	Output      string // where to save the generated graph
	Vertices    int
	Density     float64
	MinCost     int64
	MaxCost     int64
	Seed        int64 // 0 picks a time-based seed at startup
	Undirected  bool
	Source      int
	Target      int // lastVertex means the last vertex
	Store       pqueue.Kind
	Method      string
	Trials      int
	Densities   []float64
	ShowMatrix  bool
	JSON        bool
	LogLevel    slog.Level
	MetricsAddr string
}

func LoadConfig(args []string) (Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("failed to get cwd: %w", err)
	}

	mode := envOrDefault("GRAPHKIT_MODE", defaultMode)
	input := os.Getenv("GRAPHKIT_INPUT")
	store := envOrDefault("GRAPHKIT_STORE", pqueue.KindHeap.String())
	method := envOrDefault("GRAPHKIT_METHOD", prim_kruskal.MethodPrim)
	densities := envOrDefault("GRAPHKIT_DENSITIES", defaultDensities)
	logLevel := envOrDefault("GRAPHKIT_LOG_LEVEL", defaultLogLevel)
	metricsAddr := os.Getenv("GRAPHKIT_METRICS_ADDR")

	vertices, err := envInt("GRAPHKIT_VERTICES", defaultVertices)
	if err != nil {
		return Config{}, err
	}
	trials, err := envInt("GRAPHKIT_TRIALS", defaultTrials)
	if err != nil {
		return Config{}, err
	}
	seed, err := envInt64("GRAPHKIT_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	density := defaultDensity
	if v := os.Getenv("GRAPHKIT_DENSITY"); v != "" {
		if density, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("invalid GRAPHKIT_DENSITY: %w", err)
		}
	}

	flagSet := flag.NewFlagSet("graphkit", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagMode := flagSet.String("mode", mode, "what to run: path|mst|simulate|all")
	flagInput := flagSet.String("input", input, "load the graph from this edge list file")
	flagOutput := flagSet.String("output", "", "save the generated graph to this file")
	flagVertices := flagSet.Int("n", vertices, "number of vertices")
	flagDensity := flagSet.Float64("density", density, "edge probability in [0,1]")
	flagMin := flagSet.Int64("min-cost", defaultMinCost, "smallest edge cost (>= 1)")
	flagMax := flagSet.Int64("max-cost", defaultMaxCost, "largest edge cost")
	flagSeed := flagSet.Int64("seed", seed, "random seed; 0 picks one from the clock")
	flagUndirected := flagSet.Bool("undirected", false, "generate a symmetric graph")
	flagSource := flagSet.Int("src", 0, "shortest path source vertex")
	flagTarget := flagSet.Int("dst", lastVertex, "shortest path destination vertex; -1 for the last one")
	flagStore := flagSet.String("store", store, "priority store: heap|linear")
	flagMethod := flagSet.String("method", method, "spanning tree method: prim|kruskal")
	flagTrials := flagSet.Int("trials", trials, "graphs per density in simulate mode")
	flagDensities := flagSet.String("densities", densities, "comma-separated densities for simulate mode")
	flagMatrix := flagSet.Bool("matrix", false, "print the cost matrix")
	flagJSON := flagSet.Bool("json", false, "print results as JSON")
	flagLogLevel := flagSet.String("log-level", logLevel, "debug|info|warn|error")
	flagMetrics := flagSet.String("metrics-addr", metricsAddr, "serve Prometheus metrics on this address and wait for a signal")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flagSet.SetOutput(os.Stdout)
			flagSet.PrintDefaults()
			return Config{}, err
		}
		return Config{}, err
	}

	kind, err := pqueue.ParseKind(strings.ToLower(strings.TrimSpace(*flagStore)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid store: %w", err)
	}
	level, err := parseLevel(*flagLogLevel)
	if err != nil {
		return Config{}, err
	}
	ds, err := parseDensities(*flagDensities)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		Mode:        strings.ToLower(strings.TrimSpace(*flagMode)),
		Input:       resolvePath(*flagInput, cwd),
		Output:      resolvePath(*flagOutput, cwd),
		Vertices:    *flagVertices,
		Density:     *flagDensity,
		MinCost:     *flagMin,
		MaxCost:     *flagMax,
		Seed:        *flagSeed,
		Undirected:  *flagUndirected,
		Source:      *flagSource,
		Target:      *flagTarget,
		Store:       kind,
		Method:      strings.ToLower(strings.TrimSpace(*flagMethod)),
		Trials:      *flagTrials,
		Densities:   ds,
		ShowMatrix:  *flagMatrix,
		JSON:        *flagJSON,
		LogLevel:    level,
		MetricsAddr: strings.TrimSpace(*flagMetrics),
	}

	switch config.Mode {
	case modePath, modeMST, modeSimulate, modeAll:
	default:
		return Config{}, fmt.Errorf("unsupported mode: %s", config.Mode)
	}
	if config.Method != prim_kruskal.MethodPrim && config.Method != prim_kruskal.MethodKruskal {
		return Config{}, fmt.Errorf("unsupported method: %s", config.Method)
	}
	if config.Input == "" {
		if config.Vertices < 1 {
			return Config{}, errors.New("n must be at least 1")
		}
		if config.Density < 0 || config.Density > 1 {
			return Config{}, fmt.Errorf("density %g not in [0,1]", config.Density)
		}
	}
	if config.MinCost < 1 || config.MaxCost < config.MinCost {
		return Config{}, fmt.Errorf("invalid cost range [%d,%d]", config.MinCost, config.MaxCost)
	}
	if config.Source < 0 {
		return Config{}, fmt.Errorf("src %d must be non-negative", config.Source)
	}
	if config.Target < lastVertex {
		return Config{}, fmt.Errorf("dst %d must be non-negative or -1", config.Target)
	}
	if config.Trials < 1 {
		return Config{}, errors.New("trials must be positive")
	}
	if config.Input != "" && config.Mode == modeSimulate {
		return Config{}, errors.New("simulate mode generates its own graphs; drop -input")
	}

	return config, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envInt64(key string, fallback int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func parseDensities(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid density %q: %w", p, err)
		}
		if d < 0 || d > 1 {
			return nil, fmt.Errorf("density %g not in [0,1]", d)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, errors.New("densities cannot be empty")
	}
	return out, nil
}

func resolvePath(path string, cwd string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return trimmed
	}
	if filepath.IsAbs(trimmed) {
		return trimmed
	}
	return filepath.Join(cwd, trimmed)
}
