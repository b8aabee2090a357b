package diffusion

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/meshlens/algoerr"
	"github.com/katalvlaran/meshlens/core"
	"github.com/katalvlaran/meshlens/params"
)

// RunParams adapts Run to the dispatcher signature. The graph is admitted
// before b is read, so an empty graph is reported over bad parameters.
func RunParams(g *core.Graph, b *params.Bag) (any, error) {
	if err := algoerr.CheckGraph(g); err != nil {
		return nil, fmt.Errorf("diffusion: %w", err)
	}
	opts, err := FromParams(b)
	if err != nil {
		return nil, err
	}

	return Run(g, opts)
}

// Run computes DC = Σ_{t=1..T} (qA)^t · 1 for every node.
//
// Implementation:
//   - Stage 1: Admit graph and validate options.
//   - Stage 2: Build a sparse symmetric adjacency (0/1 per linked pair, or
//     summed weights when Weighted). Self-loops are dropped.
//   - Stage 3: Iterate x_t = qA·x_{t-1} from x_0 = 1 and accumulate the sum;
//     this avoids forming matrix powers. A score that leaves float64 range
//     fails the run with a ParamError on T, so results always encode as JSON.
//   - Stage 4: Rank by score desc, ID asc.
//
// Complexity: O(T·(V + E)) time, O(V + E) memory.
func Run(g *core.Graph, opts Options) (*Result, error) {
	if err := algoerr.CheckGraph(g); err != nil {
		return nil, fmt.Errorf("diffusion: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ids := g.Vertices()
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	type entry struct {
		to int
		w  float64
	}
	adj := make([]map[int]float64, n)
	for i := range adj {
		adj[i] = make(map[int]float64)
	}
	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		u, v := index[e.From], index[e.To]
		if opts.Weighted {
			adj[u][v] += e.Weight
			adj[v][u] += e.Weight
		} else {
			adj[u][v] = 1
			adj[v][u] = 1
		}
	}
	// freeze into ordered slices so float summation order is reproducible
	rows := make([][]entry, n)
	for u := range adj {
		row := make([]entry, 0, len(adj[u]))
		for v, w := range adj[u] {
			row = append(row, entry{to: v, w: w})
		}
		sort.Slice(row, func(i, j int) bool { return row[i].to < row[j].to })
		rows[u] = row
	}

	x := make([]float64, n)
	next := make([]float64, n)
	score := make([]float64, n)
	for i := range x {
		x[i] = 1
	}
	for t := 0; t < opts.Steps; t++ {
		for u, row := range rows {
			s := 0.0
			for _, en := range row {
				s += en.w * x[en.to]
			}
			next[u] = opts.Q * s
		}
		x, next = next, x
		for i := range score {
			score[i] += x[i]
			if math.IsInf(score[i], 0) || math.IsNaN(score[i]) {
				return nil, algoerr.Invalid(algorithm, ParamSteps,
					fmt.Sprintf("score of %s overflows float64 at step %d; lower T, q or link weights", ids[i], t+1))
			}
		}
	}

	res := &Result{
		Scores:  make(map[string]float64, n),
		Ranking: make([]Ranked, n),
		Steps:   opts.Steps,
		Q:       opts.Q,
	}
	for i, id := range ids {
		res.Scores[id] = score[i]
		res.Ranking[i] = Ranked{ID: id, Score: score[i]}
	}
	sort.SliceStable(res.Ranking, func(i, j int) bool {
		return res.Ranking[i].Score > res.Ranking[j].Score
	})
	if opts.TopK > 0 && opts.TopK < len(res.Ranking) {
		res.Ranking = res.Ranking[:opts.TopK]
	}

	return res, nil
}
