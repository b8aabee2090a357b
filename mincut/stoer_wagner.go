package mincut

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/meshlens/algoerr"
	"github.com/katalvlaran/meshlens/core"
	"github.com/katalvlaran/meshlens/dfs"
	"github.com/katalvlaran/meshlens/params"
)

// RunParams adapts Run to the dispatcher signature. The graph is admitted
// before b is read, so an empty graph is reported over bad parameters.
func RunParams(g *core.Graph, b *params.Bag) (any, error) {
	if err := algoerr.CheckGraph(g); err != nil {
		return nil, fmt.Errorf("mincut: %w", err)
	}
	opts, err := FromParams(b)
	if err != nil {
		return nil, err
	}

	return Run(g, opts)
}

// Run computes the global minimum cut of g with Stoer–Wagner.
//
// Implementation:
//   - Stage 1: Admit the graph (non-empty, at least two vertices).
//   - Stage 2: A disconnected graph has a zero cut: return its first component
//     against the rest without running any phase.
//   - Stage 3: Build the dense weight matrix; parallel links are summed and
//     self-loops dropped.
//   - Stage 4: Run V-1 minimum-cut phases. Each phase grows a set by always
//     adding the most tightly connected vertex (ties: lowest vertex ID), records
//     the cut-of-the-phase of the last vertex added, then merges the last two.
//   - Stage 5: Expand the best phase into a vertex partition and its crossing links.
//
// Complexity: O(V^3) time, O(V^2) memory.
func Run(g *core.Graph, opts Options) (*Result, error) {
	if err := algoerr.CheckGraph(g); err != nil {
		return nil, fmt.Errorf("mincut: %w", err)
	}
	ids := g.Vertices()
	n := len(ids)
	if n < 2 {
		return nil, fmt.Errorf("mincut: %w", ErrTooFewVertices)
	}

	comps, err := dfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("mincut: %w", err)
	}
	if len(comps) > 1 {
		rest := make([]string, 0, n-len(comps[0]))
		for _, c := range comps[1:] {
			rest = append(rest, c...)
		}
		sort.Strings(rest)

		return &Result{Partition: [2][]string{comps[0], rest}, CutEdges: []string{}}, nil
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
	}
	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		u, v := index[e.From], index[e.To]
		w[u][v] += e.Weight
		w[v][u] += e.Weight
	}

	members := make([][]int, n)
	active := make([]int, n)
	for i := range members {
		members[i] = []int{i}
		active[i] = i
	}

	best := math.Inf(1)
	var bestSide []int
	phases := 0
	conn := make([]float64, n)
	added := make([]bool, n)

	for len(active) > 1 {
		for _, v := range active {
			conn[v] = 0
			added[v] = false
		}
		prev, last := -1, -1
		for range active {
			sel := -1
			for _, v := range active {
				if !added[v] && (sel == -1 || conn[v] > conn[sel]) {
					sel = v
				}
			}
			added[sel] = true
			prev, last = last, sel
			for _, v := range active {
				if !added[v] {
					conn[v] += w[sel][v]
				}
			}
		}
		phases++

		cut := conn[last]
		if cut <= opts.Epsilon {
			cut = 0
		}
		if cut < best {
			best = cut
			bestSide = append(bestSide[:0], members[last]...)
		}

		// merge last into prev
		members[prev] = append(members[prev], members[last]...)
		for _, v := range active {
			w[prev][v] += w[last][v]
			w[v][prev] = w[prev][v]
		}
		w[prev][prev] = 0
		for i, v := range active {
			if v == last {
				active = append(active[:i], active[i+1:]...)
				break
			}
		}
	}

	return expand(g, ids, bestSide, phases), nil
}

// expand turns the winning vertex set into the reported Result.
func expand(g *core.Graph, ids []string, side []int, phases int) *Result {
	inSide := make(map[string]bool, len(side))
	for _, i := range side {
		inSide[ids[i]] = true
	}
	var a, b []string
	for _, id := range ids {
		if inSide[id] {
			a = append(a, id)
		} else {
			b = append(b, id)
		}
	}
	// ids is sorted, so the side holding ids[0] goes first.
	if !inSide[ids[0]] {
		a, b = b, a
	}

	res := &Result{Partition: [2][]string{a, b}, CutEdges: []string{}, Phases: phases}
	for _, e := range g.Edges() {
		if inSide[e.From] != inSide[e.To] {
			res.CutEdges = append(res.CutEdges, e.ID)
			res.Weight += e.Weight
		}
	}

	return res
}
