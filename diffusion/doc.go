// Package diffusion scores how well each mesh node can spread a message
// within a bounded number of hops.
//
// Diffusion centrality (Banerjee et al.) counts the expected number of
// times information originating at a node reaches others when every link
// passes it on with probability q per step, over T steps:
//
//	DC = Σ_{t=1..T} (q·A)^t · 1
//
// For T = 1 this is q times the degree. As T grows the ranking tends to
// Katz-Bonacich centrality when q < 1/λ₁ and to eigenvector centrality when
// q > 1/λ₁.
//
// Parameters (params.Bag):
//
//	T         int      number of steps (required, > 0)
//	q         float64  passing probability in (0, 1] (default 0.5)
//	weighted  bool     use summed link weights instead of 0/1 adjacency
//	top_k     int      truncate the ranking (0 = all)
//
// Errors:
//
//   - algoerr.ParamError (errors.Is algoerr.ErrMissingParameter) when T is
//     absent, not an int, or not positive, or another key is out of range.
//   - algoerr.ErrEmptyGraph / algoerr.ErrNilGraph.
//
// Complexity: O(T·(V + E)).
package diffusion
