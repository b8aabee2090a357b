// Package mincut defines options, results and errors for the global minimum cut.
package mincut

import (
	"fmt"

	"github.com/katalvlaran/meshlens/algoerr"
	"github.com/katalvlaran/meshlens/params"
)

// ErrTooFewVertices indicates a graph with fewer than two vertices; no cut exists.
var ErrTooFewVertices = fmt.Errorf("%w: global min-cut needs at least 2 vertices", algoerr.ErrInvalidGraph)

// ParamEpsilon (float64, >= 0) is the tolerance below which a phase cut counts as zero.
const ParamEpsilon = "epsilon"

// DefaultEpsilon absorbs float accumulation noise.
const DefaultEpsilon = 1e-12

// Options configures Run.
type Options struct {
	Epsilon float64
}

// DefaultOptions returns Options{Epsilon: DefaultEpsilon}.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// FromParams reads the optional epsilon. A negative value is rejected.
func FromParams(b *params.Bag) (Options, error) {
	opts := DefaultOptions()
	if eps, ok := params.Float(b, ParamEpsilon); ok {
		if eps < 0 {
			return opts, algoerr.Invalid("mincut", ParamEpsilon, fmt.Sprintf("must be >= 0, got %g", eps))
		}
		opts.Epsilon = eps
	}

	return opts, nil
}

// Result is the lightest set of links whose removal splits the mesh.
type Result struct {
	// Weight is the summed weight of CutEdges; 0 for a disconnected graph.
	Weight float64 `json:"weight"`

	// Partition holds both sides, each sorted. Side 0 contains the smallest vertex ID.
	Partition [2][]string `json:"partition"`

	// CutEdges are the IDs of the links crossing the partition, in creation order.
	CutEdges []string `json:"cut_edges"`

	// Phases is the number of Stoer–Wagner phases run (0 when short-circuited).
	Phases int `json:"phases"`
}
