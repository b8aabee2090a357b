// Package meshlens runs graph analytics over mesh-network snapshots: nodes,
// the links between them and the sample histories both carry.
//
// What is in the box?
//
//	A thread-safe graph model plus five analytics, switched on and off by a
//	five-bit activation mask and fed from per-algorithm parameter bags:
//		• articulation_points   (bit 0) - nodes whose loss splits the mesh
//		• global_min_cut        (bit 1) - cheapest set of links to sever it
//		• diffusion_centrality  (bit 2) - how far a node's broadcast reaches in T hops
//		• most_similar_timeline (bit 3) - nodes whose histories look alike
//		• predicted_state       (bit 4) - next value of every node or link series
//
// A dispatch runs every enabled algorithm in bit order and collects one
// Outcome per algorithm. A failure (missing parameter, empty graph, too
// little history, even a panic) stays in its own slot.
//
// Layout:
//
//	core/         - Graph, Vertex, Edge, Sample; RW-locked, Clone for snapshots
//	params/       - Bag: string-keyed parameters with typed Get[T]
//	algoconf/     - Kind, Registry, Store, YAML/JSON config files, hot reload
//	algoerr/      - shared error taxonomy
//	dfs/          - components and traversal
//	articulation/ - Tarjan low-link cut vertices and bridges
//	mincut/       - Stoer–Wagner
//	diffusion/    - bounded-step diffusion centrality
//	timeline/     - DTW / Euclidean series similarity
//	predict/      - linear, last-value and EWMA extrapolation
//	dispatch/     - ordered, failure-isolated execution with tracing
//	metrics/      - Prometheus observer for dispatches
//	snapshot/     - graph files
//	filewatch/    - debounced file change notifications
//	logging/      - slog setup
//	builder/      - deterministic fixtures
//	cmd/meshlens/ - CLI
//
// Quick ASCII example:
//
//	    A───B───C
//	        │
//	        D
//
// B is the only articulation point; the global min cut is any single link.
//
//	go install github.com/katalvlaran/meshlens/cmd/meshlens@latest
package meshlens
