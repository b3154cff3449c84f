package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphkit/graph"
)

// ErrMalformed indicates a line that does not match the expected format.
// The wrapping error names the line number.
var ErrMalformed = errors.New("graphio: malformed input")

// parse states
const (
	parseOrder = iota
	parseEdges
)

// Read parses a graph from r.
//
// Errors:
//   - ErrMalformed           for a missing or non-numeric header, or an edge line
//     without exactly three integer fields.
//   - graph.ErrBadSize       for n < 1 or n > graph.MaxOrder.
//   - graph.ErrOutOfRange    for an endpoint outside [0, n).
//   - graph.ErrSelfLoop      for src == dst.
//   - graph.ErrInvalidWeight for a cost < 1.
//
// Errors about a specific line name its 1-based number.
func Read(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanLines)

	var (
		n      int
		costs  = make(map[[2]int]int64)
		lineNo int
		state  = parseOrder
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		switch state {
		case parseOrder:
			v, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: vertex count %q", ErrMalformed, lineNo, line)
			}
			if v < 1 || v > graph.MaxOrder {
				return nil, fmt.Errorf("graphio: line %d: %w: n=%d", lineNo, graph.ErrBadSize, v)
			}
			n = v
			state = parseEdges
		case parseEdges:
			e, err := parseEdge(line, n)
			if err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
			}
			costs[[2]int{e.From, e.To}] = e.Cost
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}
	if state == parseOrder {
		return nil, fmt.Errorf("%w: missing vertex count", ErrMalformed)
	}

	// Range and density come from the surviving edges.
	opts := make([]graph.Option, 0, 2)
	if len(costs) > 0 {
		var minC, maxC int64 = graph.NoEdge, graph.NoEdge
		for _, c := range costs {
			if minC == graph.NoEdge || c < minC {
				minC = c
			}
			if c > maxC {
				maxC = c
			}
		}
		opts = append(opts, graph.WithCostRange(minC, maxC))
	}
	density := 0.0
	if n > 1 {
		density = float64(len(costs)) / float64(n*(n-1))
	}
	opts = append(opts, graph.WithDensity(density))

	g, err := graph.New(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	for pair, c := range costs {
		if err = g.SetEdge(pair[0], pair[1], c); err != nil {
			return nil, fmt.Errorf("graphio: %w", err)
		}
	}

	return g, nil
}

// parseEdge reads "src dst cost" and checks it against order n.
func parseEdge(line string, n int) (graph.Edge, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return graph.Edge{}, fmt.Errorf("%w: want \"src dst cost\", got %q", ErrMalformed, line)
	}
	var (
		vals [3]int64
		err  error
	)
	for i, f := range fields {
		if vals[i], err = strconv.ParseInt(f, 10, 64); err != nil {
			return graph.Edge{}, fmt.Errorf("%w: field %d %q is not an integer", ErrMalformed, i+1, f)
		}
	}
	e := graph.Edge{From: int(vals[0]), To: int(vals[1]), Cost: vals[2]}

	switch {
	case e.From < 0 || e.From >= n || e.To < 0 || e.To >= n:
		return graph.Edge{}, fmt.Errorf("%w: %d→%d with n=%d", graph.ErrOutOfRange, e.From, e.To, n)
	case e.From == e.To:
		return graph.Edge{}, fmt.Errorf("%w: vertex %d", graph.ErrSelfLoop, e.From)
	case e.Cost < 1:
		return graph.Edge{}, fmt.Errorf("%w: cost=%d", graph.ErrInvalidWeight, e.Cost)
	}

	return e, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Write emits g in the edge list format accepted by Read.
func Write(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", g.Order())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Cost)
	}

	return bw.Flush()
}

// WriteFile writes g to path with Write, creating or truncating the file.
func WriteFile(path string, g *graph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	if err = Write(f, g); err != nil {
		f.Close()
		return fmt.Errorf("graphio: %w", err)
	}

	return f.Close()
}

// WriteMatrix dumps the dense cost matrix of g, one row per line.
func WriteMatrix(w io.Writer, g *graph.Graph) error {
	_, err := io.WriteString(w, g.String())

	return err
}
