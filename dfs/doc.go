// Package dfs implements depth-first traversal and connected components on
// the undirected core.Graph.
//
// What:
//
//   - DFS(g, startID, opts...): single-source or forest traversal recording
//     post-order, depths, parents and roots.
//   - Components(g, opts...): connected components, each sorted, ordered by
//     their smallest vertex ID.
//
// Why:
//   - Articulation analysis reports results per component and can ignore
//     weak links (MinWeight).
//   - Global min-cut short-circuits to zero on a disconnected snapshot.
//
// Options:
//
//   - WithFilterEdge(fn)        skip links, e.g. MinWeight(w) for a quality threshold.
//   - WithFullTraversal()       visit every component.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing (single-source mode).
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V + E) for the explicit stack (it holds neighbor slices) and
//     the metadata maps. No recursion.
package dfs
