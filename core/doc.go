// Package core defines the mesh topology model used by every meshlens
// algorithm: an undirected, weighted multigraph whose vertices and edges
// carry time-ordered sample histories.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so a live graph can be fed from a
// telemetry goroutine while analysis runs elsewhere. Analysis never touches the
// live graph directly: take a snapshot with Clone and hand the snapshot to the
// algorithms.
//
// Policies:
//
//	WithLoops()       - permit self-loops (a node hearing its own rebroadcast).
//	WithMultiEdges()  - permit parallel edges (several links between the same pair).
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrNegativeWeight      - negative, NaN or infinite weight.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// Determinism:
//
//	Vertices() and NeighborIDs() are sorted lexicographically; Edges() and
//	Neighbors() follow edge creation order. Algorithms rely on this to produce
//	identical results for identical snapshots.
package core
