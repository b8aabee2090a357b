package dfs

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// FilterEdge, if non-nil, decides whether an edge may be followed.
	// Rejected edges are counted in DFSResult.SkippedEdges.
	FilterEdge func(from, to string, weight float64) bool

	// FullTraversal restarts from every unvisited vertex, covering all components.
	FullTraversal bool
}

// DefaultOptions returns single-source, unfiltered options.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithFilterEdge restricts traversal to edges accepted by fn.
func WithFilterEdge(fn func(from, to string, weight float64) bool) Option {
	return func(o *DFSOptions) { o.FilterEdge = fn }
}

// MinWeight is a FilterEdge that keeps links of weight >= w.
func MinWeight(w float64) func(from, to string, weight float64) bool {
	return func(_, _ string, weight float64) bool { return weight >= w }
}

// WithFullTraversal enables forest traversal over all components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each vertex ID to its tree depth from its root.
	Depth map[string]int

	// Parent maps each non-root vertex to the vertex it was discovered from.
	Parent map[string]string

	// Roots lists the tree roots in the order trees were started.
	Roots []string

	// Visited flags which vertices were reached.
	Visited map[string]bool

	// SkippedEdges reports how many edges FilterEdge rejected.
	SkippedEdges int
}
