package predict

import (
	"fmt"

	"github.com/katalvlaran/meshlens/algoerr"
	"github.com/katalvlaran/meshlens/core"
	"github.com/katalvlaran/meshlens/params"
)

// RunParams adapts Run to the dispatcher signature. The graph is admitted
// before b is read, so an empty graph is reported over bad parameters.
func RunParams(g *core.Graph, b *params.Bag) (any, error) {
	if err := algoerr.CheckGraph(g); err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	opts, err := FromParams(b)
	if err != nil {
		return nil, err
	}

	return Run(g, opts)
}

// Run predicts the next state of every node (or edge) history.
//
// Series without samples are listed in Excluded; a graph where every series
// is empty yields a Result with no predictions, not an error.
//
// Complexity: O(S) predictor calls over S total samples for the built-ins.
func Run(g *core.Graph, opts Options) (*Result, error) {
	if err := algoerr.CheckGraph(g); err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	p := opts.Predictor
	if p == nil {
		p = Linear{}
	}
	scope := opts.Scope
	if scope == "" {
		scope = ScopeNodes
	}

	type series struct {
		id      string
		samples []core.Sample
	}
	var all []series
	switch scope {
	case ScopeEdges:
		for _, e := range g.Edges() {
			h, err := g.EdgeHistory(e.ID)
			if err != nil {
				return nil, fmt.Errorf("predict: %w", err)
			}
			all = append(all, series{id: e.ID, samples: h})
		}
	default:
		for _, id := range g.Vertices() {
			h, err := g.VertexHistory(id)
			if err != nil {
				return nil, fmt.Errorf("predict: %w", err)
			}
			all = append(all, series{id: id, samples: h})
		}
	}

	res := &Result{
		Predictions: make([]Prediction, 0, len(all)),
		Excluded:    make([]string, 0),
		Method:      p.Name(),
		Scope:       scope,
	}
	for _, s := range all {
		samples := s.samples
		if len(samples) == 0 {
			res.Excluded = append(res.Excluded, s.id)
			continue
		}
		if opts.Window > 0 && len(samples) > opts.Window {
			samples = samples[len(samples)-opts.Window:]
		}
		horizon := opts.Horizon
		if horizon == 0 {
			horizon = meanInterval(samples)
		}
		at := samples[len(samples)-1].At.Add(horizon)
		v, err := p.Predict(samples, at)
		if err != nil {
			return nil, fmt.Errorf("predict: %s %s: %w", p.Name(), s.id, err)
		}
		res.Predictions = append(res.Predictions, Prediction{ID: s.id, At: at, Value: v, Samples: len(samples)})
	}

	return res, nil
}
