// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Sample, Graph, GraphOption, sentinel errors, NewGraph.
// Concurrency:
//   - muVert guards vertices (including vertex histories).
//   - muEdgeAdj guards edges, edge histories and adjacency.
//   - Lock order is always muVert -> muEdgeAdj.
// AI-HINT (file):
//   - Graphs are undirected; every non-loop edge is mirrored in adjacency.
//   - Weights are float64, finite and >= 0 (ErrNegativeWeight otherwise).

package core

import (
	"errors"
	"sync"
	"time"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative, NaN or infinite edge weight.
	ErrNegativeWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Sample is one timestamped observation attached to a vertex or an edge
// (SNR, battery level, hop latency, ...).
type Sample struct {
	At    time.Time
	Value float64
}

// Vertex represents a mesh node.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is shallow-copied by Clone.
	Metadata map[string]any

	// History holds samples ordered by At ascending.
	History []Sample
}

// Edge represents an undirected link between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From and To are the endpoint vertex IDs. Orientation carries no meaning.
	From string
	To   string

	// Weight is the link cost or quality, always >= 0.
	Weight float64

	// History holds samples ordered by At ascending.
	History []Sample
}

// Other returns the endpoint opposite to id. For a self-loop it returns id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// IsLoop reports whether the edge connects a vertex to itself.
func (e *Edge) IsLoop() bool { return e.From == e.To }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory mesh topology.
//
// It is undirected and weighted, optionally with parallel edges and self-loops.
// muVert protects the vertices map; muEdgeAdj protects the edges map and adjacencyList.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[u][v][edgeID] = struct{}{}, mirrored for u != v.
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. By default, no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
