// Package algoconf selects and parameterizes the meshlens algorithms.
//
// A Registry holds one AlgorithmConfig per Kind: an on/off Activation and a
// params.Bag. Activations can be assigned all at once from a 5-bit mask,
//
//	bit 0  articulation_points
//	bit 1  global_min_cut
//	bit 2  diffusion_centrality
//	bit 3  most_similar_timeline
//	bit 4  predicted_state
//
// or one at a time with the per-kind setters. SetAlgorithms is absolute: a
// narrower mask switches the other kinds off.
//
// A Registry is not synchronized. Share it through a Store, which hands out
// clones for dispatch and serializes writers, and optionally keep it in sync
// with a YAML/JSON file through Watch.
package algoconf
