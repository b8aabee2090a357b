// Package articulation finds the single points of failure of a mesh: the
// nodes whose loss splits the network (articulation points) and, optionally,
// the links whose loss does (bridges).
//
// What:
//
//   - Run(g, opts) performs an iterative Tarjan low-link DFS over every
//     connected component, so arbitrarily long relay chains cannot exhaust
//     the goroutine stack.
//   - Results are grouped per component: a disconnected snapshot is analyzed
//     island by island rather than rejected.
//
// Graph handling:
//
//   - Undirected by construction; self-loops are ignored.
//   - Parallel links between the same pair are tolerated: they never change
//     articulation status and they are never reported as bridges.
//
// Parameters (params.Bag):
//
//	include_bridges  bool     report bridges too (default true)
//	min_weight       float64  ignore links lighter than this (default 0)
//
// Errors:
//
//   - algoerr.ErrEmptyGraph / algoerr.ErrNilGraph (both algoerr.ErrInvalidGraph).
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E)
package articulation
