// Package graphio reads and writes graph.Graph values in a plain-text edge
// list format:
//
//	# comment lines and blank lines are ignored
//	4          <- vertex count n
//	0 1 2      <- "src dst cost", one directed edge per line
//	1 2 3
//
// Fields are separated by any run of spaces or tabs. A later line for the
// same (src, dst) pair replaces the earlier cost. The cost range of a loaded
// graph is the smallest and largest cost seen; its density is the observed
// edge count over n·(n−1).
//
// WriteMatrix dumps the dense matrix instead, one row per line, for humans.
package graphio
