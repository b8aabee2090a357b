// Package mincut computes the global minimum cut of a mesh snapshot: the
// lightest set of links whose loss splits the network in two, whichever two
// halves that turns out to be.
//
// What:
//
//   - Run(g, opts) implements Stoer–Wagner (1997) over a dense weight matrix.
//     Link weights are read as capacities: parallel links add up, self-loops
//     contribute nothing.
//   - A snapshot that is already disconnected has a zero cut; Run reports the
//     component holding the smallest vertex ID against everything else
//     without running any phase.
//
// Parameters (params.Bag):
//
//	epsilon  float64  phase cuts at or below this count as 0 (default 1e-12)
//
// Errors:
//
//   - algoerr.ErrEmptyGraph / algoerr.ErrNilGraph
//   - ErrTooFewVertices for a single-vertex graph (wraps algoerr.ErrInvalidGraph)
//   - algoerr.ParamError for a negative epsilon
//
// Complexity:
//
//   - Time:   O(V^3)
//   - Memory: O(V^2)
package mincut
