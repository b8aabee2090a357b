package dfs

import (
	"sort"

	"github.com/katalvlaran/meshlens/core"
)

// Components partitions g into connected components.
//
// Each component is sorted by vertex ID and components are ordered by their
// smallest vertex, so the result is stable for a given graph. Isolated
// vertices form singleton components. Extra options (e.g. WithFilterEdge)
// restrict which links count as connections. The walk is iterative.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts = append(opts, WithFullTraversal())
	res, err := DFS(g, "", opts...)
	if err != nil {
		return nil, err
	}

	// Post-order keeps every tree contiguous and finishes it with its root.
	comps := make([][]string, 0, len(res.Roots))
	var cur []string
	for _, v := range res.Order {
		cur = append(cur, v)
		if _, hasParent := res.Parent[v]; !hasParent {
			sort.Strings(cur)
			comps = append(comps, cur)
			cur = nil
		}
	}

	return comps, nil
}

// ComponentOf maps each vertex ID to its index in comps.
func ComponentOf(comps [][]string) map[string]int {
	out := make(map[string]int)
	for i, c := range comps {
		for _, v := range c {
			out[v] = i
		}
	}

	return out
}
