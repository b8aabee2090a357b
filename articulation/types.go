// Package articulation defines options, results and errors for
// articulation-point (cut-vertex) and bridge detection.
package articulation

import (
	"fmt"

	"github.com/katalvlaran/meshlens/algoerr"
	"github.com/katalvlaran/meshlens/params"
)

// Parameter keys read by FromParams.
const (
	// ParamIncludeBridges (bool) toggles bridge reporting. Default true.
	ParamIncludeBridges = "include_bridges"

	// ParamMinWeight (float64, >= 0) ignores links lighter than this, e.g.
	// links whose quality is too poor to carry traffic. Default 0.
	ParamMinWeight = "min_weight"
)

// Options configures a run.
type Options struct {
	// IncludeBridges also reports cut edges.
	IncludeBridges bool

	// MinWeight drops links with Weight < MinWeight before the analysis.
	MinWeight float64
}

// DefaultOptions returns Options with bridges enabled.
func DefaultOptions() Options {
	return Options{IncludeBridges: true}
}

// FromParams overlays bag entries on DefaultOptions. Wrongly typed keys are
// ignored; a negative min_weight is rejected.
func FromParams(b *params.Bag) (Options, error) {
	opts := DefaultOptions()
	opts.IncludeBridges = params.GetOr(b, ParamIncludeBridges, opts.IncludeBridges)
	opts.MinWeight = params.FloatOr(b, ParamMinWeight, opts.MinWeight)
	if opts.MinWeight < 0 {
		return opts, algoerr.Invalid("articulation", ParamMinWeight, fmt.Sprintf("must be >= 0, got %g", opts.MinWeight))
	}

	return opts, nil
}

// Bridge is an edge whose removal disconnects its endpoints. From < To.
type Bridge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	EdgeID string `json:"edge_id"`
}

// Component is one connected component with its own cut vertices.
type Component struct {
	Vertices []string `json:"vertices"`
	Points   []string `json:"points"`
}

// Result is the outcome of Run.
type Result struct {
	// Points lists every articulation point, sorted.
	Points []string `json:"points"`

	// Bridges lists cut edges sorted by (From, To). Empty when disabled.
	Bridges []Bridge `json:"bridges,omitempty"`

	// Components groups vertices and points per connected component,
	// ordered by smallest vertex ID.
	Components []Component `json:"components"`

	// NodeCount and EdgeCount describe the analyzed snapshot (loops excluded).
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
}

// IsPoint reports whether id is an articulation point.
func (r *Result) IsPoint(id string) bool {
	for _, p := range r.Points {
		if p == id {
			return true
		}
	}

	return false
}
