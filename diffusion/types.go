// Package diffusion defines options and results for diffusion centrality.
package diffusion

import (
	"fmt"

	"github.com/katalvlaran/meshlens/algoerr"
	"github.com/katalvlaran/meshlens/params"
)

const algorithm = "diffusion"

// Parameter keys read by FromParams.
const (
	ParamSteps    = "T"        // int > 0, required
	ParamQ        = "q"        // float64 in (0, 1]
	ParamWeighted = "weighted" // bool
	ParamTopK     = "top_k"    // int >= 0
)

// DefaultQ is the per-step passing probability when none is given.
const DefaultQ = 0.5

// Options configures Run. Steps has no default.
type Options struct {
	// Steps is the diffusion horizon T.
	Steps int

	// Q is the probability that a node passes information along a link in one step.
	Q float64

	// Weighted uses summed link weights as adjacency entries instead of 0/1.
	Weighted bool

	// TopK truncates Ranking; 0 keeps every node.
	TopK int
}

// DefaultOptions returns every default; Steps stays 0 and must be set.
func DefaultOptions() Options {
	return Options{Q: DefaultQ}
}

// Validate checks ranges.
func (o Options) Validate() error {
	if o.Steps <= 0 {
		return algoerr.Invalid(algorithm, ParamSteps, fmt.Sprintf("must be a positive int, got %d", o.Steps))
	}
	if !(o.Q > 0 && o.Q <= 1) {
		return algoerr.Invalid(algorithm, ParamQ, fmt.Sprintf("must be in (0, 1], got %g", o.Q))
	}
	if o.TopK < 0 {
		return algoerr.Invalid(algorithm, ParamTopK, fmt.Sprintf("must be >= 0, got %d", o.TopK))
	}

	return nil
}

// FromParams builds Options. T is required; the other keys fall back to defaults
// when absent or wrongly typed.
func FromParams(b *params.Bag) (Options, error) {
	opts := DefaultOptions()
	steps, ok := params.Get[int](b, ParamSteps)
	if !ok {
		return opts, algoerr.Missing(algorithm, ParamSteps, "int")
	}
	opts.Steps = steps
	opts.Q = params.FloatOr(b, ParamQ, opts.Q)
	opts.Weighted = params.GetOr(b, ParamWeighted, opts.Weighted)
	opts.TopK = params.GetOr(b, ParamTopK, opts.TopK)

	return opts, opts.Validate()
}

// Ranked is one node with its score.
type Ranked struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// Result carries the scores of every node and a ranking.
type Result struct {
	Scores  map[string]float64 `json:"scores"`
	Ranking []Ranked           `json:"ranking"`
	Steps   int                `json:"T"`
	Q       float64            `json:"q"`
}
