// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only policy getters and Stats.

package core

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount     int
	EdgeCount       int
	LoopCount       int
	ParallelEdges   int // edges beyond the first between the same pair
	SampledVertices int // vertices with a non-empty history
	SampledEdges    int // edges with a non-empty history
	Looped          bool
	Multigraph      bool
}

// Stats returns a snapshot summary. Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	st := &GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		Looped:      g.allowLoops,
		Multigraph:  g.allowMulti,
	}
	for _, v := range g.vertices {
		if len(v.History) > 0 {
			st.SampledVertices++
		}
	}
	for _, e := range g.edges {
		if e.IsLoop() {
			st.LoopCount++
		}
		if len(e.History) > 0 {
			st.SampledEdges++
		}
	}
	for from, inner := range g.adjacencyList {
		for to, set := range inner {
			// count each unordered pair once
			if from <= to && len(set) > 1 {
				st.ParallelEdges += len(set) - 1
			}
		}
	}

	return st
}
