package timeline

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/meshlens/algoerr"
	"github.com/katalvlaran/meshlens/core"
	"github.com/katalvlaran/meshlens/params"
)

// RunParams adapts Run to the dispatcher signature. The graph is admitted
// before b is read, so an empty graph is reported over bad parameters.
func RunParams(g *core.Graph, b *params.Bag) (any, error) {
	if err := algoerr.CheckGraph(g); err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}
	opts, err := FromParams(b)
	if err != nil {
		return nil, err
	}

	return Run(g, opts)
}

// Run finds the pair of nodes whose histories are closest under opts.Metric.
//
// Implementation:
//   - Stage 1: Admit graph; collect value series per vertex, splitting off
//     vertices without samples into Excluded.
//   - Stage 2: Resolve target mode (one vs rest) or all-pairs mode.
//   - Stage 3: Measure each pair, sort by (Distance, A, B), truncate to TopK.
//
// Complexity: O(P·C) where P is the number of pairs and C the metric cost.
func Run(g *core.Graph, opts Options) (*Result, error) {
	if err := algoerr.CheckGraph(g); err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}
	if opts.TopK < 0 {
		return nil, algoerr.Invalid(algorithm, ParamTopK, fmt.Sprintf("must be >= 0, got %d", opts.TopK))
	}
	metric := opts.Metric
	if metric == nil {
		metric = DTW{}
	}

	ids := g.Vertices()
	series := make(map[string][]float64, len(ids))
	usable := make([]string, 0, len(ids))
	excluded := make([]string, 0)
	for _, id := range ids {
		h, err := g.VertexHistory(id)
		if err != nil {
			return nil, fmt.Errorf("timeline: %w", err)
		}
		if len(h) == 0 {
			excluded = append(excluded, id)
			continue
		}
		vals := core.Values(h)
		if opts.Normalize {
			vals = zNormalize(vals)
		}
		series[id] = vals
		usable = append(usable, id)
	}

	var pairs [][2]string
	if opts.Target != "" {
		if !g.HasVertex(opts.Target) {
			return nil, algoerr.Invalid(algorithm, ParamTarget, fmt.Sprintf("unknown vertex %q", opts.Target))
		}
		if _, ok := series[opts.Target]; !ok {
			return nil, fmt.Errorf("timeline: target %q: %w", opts.Target, algoerr.ErrInsufficientHistory)
		}
		for _, id := range usable {
			if id != opts.Target {
				pairs = append(pairs, [2]string{opts.Target, id})
			}
		}
		if len(pairs) == 0 {
			return nil, fmt.Errorf("timeline: no other node with samples to compare against %q: %w",
				opts.Target, algoerr.ErrInsufficientHistory)
		}
	} else {
		if len(usable) < 2 {
			return nil, fmt.Errorf("timeline: %d of %d nodes have samples, need 2: %w",
				len(usable), len(ids), algoerr.ErrInsufficientHistory)
		}
		for i := 0; i < len(usable); i++ {
			for j := i + 1; j < len(usable); j++ {
				pairs = append(pairs, [2]string{usable[i], usable[j]})
			}
		}
	}

	res := &Result{
		Pairs:    make([]Pair, 0, len(pairs)),
		Compared: len(usable),
		Excluded: excluded,
		Metric:   metric.Name(),
	}
	for _, p := range pairs {
		d, err := metric.Distance(series[p[0]], series[p[1]])
		if err != nil {
			return nil, fmt.Errorf("timeline: %s(%s, %s): %w", metric.Name(), p[0], p[1], err)
		}
		res.Pairs = append(res.Pairs, Pair{A: p[0], B: p[1], Distance: d})
	}
	sort.SliceStable(res.Pairs, func(i, j int) bool {
		a, b := res.Pairs[i], res.Pairs[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.A != b.A {
			return a.A < b.A
		}

		return a.B < b.B
	})
	if opts.TopK > 0 && opts.TopK < len(res.Pairs) {
		res.Pairs = res.Pairs[:opts.TopK]
	}
	res.Best = res.Pairs[0]

	return res, nil
}
