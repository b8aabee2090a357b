// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.
// AI-HINT (file):
//   - Clone() is the snapshot primitive: analyze the clone while the live graph keeps changing.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices
// (metadata and histories included), but no edges.
//
// Complexity: O(V + S) where S is the number of vertex samples.
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return cloneVerticesLocked(g)
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// adjacency and all histories. Metadata maps are shared.
//
// Complexity: O(V + E + S)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := cloneVerticesLocked(g)
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, History: copySamples(e.History)}
		clone.edges[eid] = ne
		linkAdjacency(clone, ne)
	}

	return clone
}

// cloneVerticesLocked expects both read locks held on g.
func cloneVerticesLocked(g *Graph) *Graph {
	clone := NewGraph()
	clone.allowMulti = g.allowMulti
	clone.allowLoops = g.allowLoops
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata, History: copySamples(v.History)}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// Edge IDs resume from "e1".
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
