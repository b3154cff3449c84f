package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/simulate"
)

var (
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(14)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

func pane(title string, rows ...string) string {
	return paneStyle.Render(headerStyle.Render(title) + "\n" + strings.Join(rows, "\n"))
}

func joinInts(vs []int, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, sep)
}

func renderGraph(g *graph.Graph, origin string, matrix bool) string {
	lo, hi := g.CostRange()
	rows := []string{
		row("origin", origin),
		row("vertices", fmt.Sprint(g.Order())),
		row("edges", fmt.Sprint(g.EdgeCount())),
		row("density", fmt.Sprintf("%.3f", g.Density())),
		row("cost range", fmt.Sprintf("[%d, %d]", lo, hi)),
		row("symmetric", fmt.Sprint(g.Symmetric())),
	}
	if matrix {
		rows = append(rows, "", subtleStyle.Render(strings.TrimRight(g.String(), "\n")))
	}
	return pane("Graph", rows...)
}

func renderPath(ps *pathSummary) string {
	rows := []string{
		row("query", fmt.Sprintf("%d → %d", ps.Source, ps.Target)),
	}
	if ps.Reachable {
		rows = append(rows,
			row("status", okStyle.Render("reachable")),
			row("distance", fmt.Sprint(*ps.Distance)),
			row("path", infoStyle.Render(joinInts(ps.Path, " → "))),
		)
		if ps.Hops != nil {
			rows = append(rows, row("fewest hops", fmt.Sprint(*ps.Hops)))
		}
	} else {
		rows = append(rows, row("status", errorStyle.Render("unreachable")))
	}
	rows = append(rows,
		row("unreached", fmt.Sprintf("%d vertices", len(ps.Unreachable))),
		row("elapsed", subtleStyle.Render(ps.Elapsed.String())),
	)
	return pane("Shortest path (Dijkstra)", rows...)
}

func renderTree(ts *treeSummary, edges []graph.Edge) string {
	status := okStyle.Render("spanning")
	if !ts.Spanning {
		status = errorStyle.Render(fmt.Sprintf("disconnected, unattached: %s", joinInts(ts.Unattached, " ")))
	}
	lines := make([]string, len(edges))
	for i, e := range edges {
		lines[i] = fmt.Sprintf("%d %d %d", e.From, e.To, e.Cost)
	}
	rows := []string{
		row("method", ts.Method),
		row("status", status),
		row("total cost", fmt.Sprint(ts.Total)),
		row("elapsed", subtleStyle.Render(ts.Elapsed.String())),
	}
	if len(lines) > 0 {
		rows = append(rows, "", subtleStyle.Render(strings.Join(lines, "\n")))
	}
	return pane("Minimum spanning tree", rows...)
}

func renderSimulation(rep simulate.Report) string {
	rows := []string{
		row("vertices", fmt.Sprint(rep.Vertices)),
		row("seed", fmt.Sprint(rep.Seed)),
		row("elapsed", subtleStyle.Render(rep.Elapsed.String())),
		"",
		labelStyle.Render("density") + fmt.Sprintf("%8s %10s %10s %10s %10s", "trials", "avg path", "reached", "avg tree", "connected"),
	}
	for _, r := range rep.Results {
		rows = append(rows, labelStyle.Render(fmt.Sprintf("%.2f", r.Density))+
			fmt.Sprintf("%8d %10.3f %9.1f%% %10.2f %10d", r.Trials, r.MeanPathCost, 100*r.MeanReachable, r.MeanTreeCost, r.Connected))
	}
	return pane("Simulation", rows...)
}
