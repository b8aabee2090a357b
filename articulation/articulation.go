package articulation

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/meshlens/algoerr"
	"github.com/katalvlaran/meshlens/core"
	"github.com/katalvlaran/meshlens/dfs"
	"github.com/katalvlaran/meshlens/params"
)

// arc is one side of an undirected edge in the dense adjacency.
type arc struct {
	to   int
	edge int // index into edges; identifies the parent edge for multi-edge safety
}

// frame is one level of the explicit DFS stack.
type frame struct {
	v          int
	parentEdge int // -1 for a tree root
	next       int // next arc to scan
	children   int // DFS tree children, used by the root rule
}

// RunParams adapts Run to the dispatcher signature. The graph is admitted
// before b is read, so an empty graph is reported over bad parameters.
func RunParams(g *core.Graph, b *params.Bag) (any, error) {
	if err := algoerr.CheckGraph(g); err != nil {
		return nil, fmt.Errorf("articulation: %w", err)
	}
	opts, err := FromParams(b)
	if err != nil {
		return nil, err
	}

	return Run(g, opts)
}

// Run finds articulation points (and optionally bridges) of g.
//
// Implementation:
//   - Stage 1: Admit the graph; build a dense adjacency without self-loops
//     and without links lighter than MinWeight.
//   - Stage 2: Split into components (dfs.Components with the same filter).
//   - Stage 3: Iterative Tarjan low-link per component. The parent is skipped
//     by edge, not by vertex, so a parallel edge back to the parent counts as a
//     back edge and such links are never bridges.
//   - Stage 4: Collect and sort.
//
// Complexity: O(V + E) time, O(V + E) memory; no recursion.
func Run(g *core.Graph, opts Options) (*Result, error) {
	if err := algoerr.CheckGraph(g); err != nil {
		return nil, fmt.Errorf("articulation: %w", err)
	}

	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	var edges []*core.Edge
	adj := make([][]arc, len(ids))
	for _, e := range g.Edges() {
		if e.IsLoop() || e.Weight < opts.MinWeight {
			continue
		}
		u, v := index[e.From], index[e.To]
		k := len(edges)
		edges = append(edges, e)
		adj[u] = append(adj[u], arc{to: v, edge: k})
		adj[v] = append(adj[v], arc{to: u, edge: k})
	}

	comps, err := dfs.Components(g, dfs.WithFilterEdge(dfs.MinWeight(opts.MinWeight)))
	if err != nil {
		return nil, fmt.Errorf("articulation: %w", err)
	}

	disc := make([]int, len(ids))
	low := make([]int, len(ids))
	for i := range disc {
		disc[i] = -1
	}
	isPoint := make([]bool, len(ids))
	var bridges []Bridge
	timer := 0

	stack := make([]frame, 0, 64)
	for _, comp := range comps {
		root := index[comp[0]]
		disc[root], low[root] = timer, timer
		timer++
		stack = append(stack[:0], frame{v: root, parentEdge: -1})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(adj[top.v]) {
				a := adj[top.v][top.next]
				top.next++
				if a.edge == top.parentEdge {
					continue
				}
				if disc[a.to] == -1 {
					disc[a.to], low[a.to] = timer, timer
					timer++
					top.children++
					stack = append(stack, frame{v: a.to, parentEdge: a.edge})
				} else if disc[a.to] < low[top.v] {
					low[top.v] = disc[a.to]
				}
				continue
			}

			done := *top
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				if done.children >= 2 {
					isPoint[done.v] = true
				}
				continue
			}
			p := &stack[len(stack)-1]
			if low[done.v] < low[p.v] {
				low[p.v] = low[done.v]
			}
			if p.parentEdge != -1 && low[done.v] >= disc[p.v] {
				isPoint[p.v] = true
			}
			if opts.IncludeBridges && low[done.v] > disc[p.v] {
				e := edges[done.parentEdge]
				from, to := e.From, e.To
				if to < from {
					from, to = to, from
				}
				bridges = append(bridges, Bridge{From: from, To: to, EdgeID: e.ID})
			}
		}
	}

	res := &Result{
		Points:     []string{},
		Components: make([]Component, 0, len(comps)),
		NodeCount:  len(ids),
		EdgeCount:  len(edges),
	}
	for i, id := range ids {
		if isPoint[i] {
			res.Points = append(res.Points, id)
		}
	}
	for _, comp := range comps {
		c := Component{Vertices: comp, Points: []string{}}
		for _, id := range comp {
			if isPoint[index[id]] {
				c.Points = append(c.Points, id)
			}
		}
		res.Components = append(res.Components, c)
	}
	if opts.IncludeBridges {
		sort.Slice(bridges, func(i, j int) bool {
			if bridges[i].From != bridges[j].From {
				return bridges[i].From < bridges[j].From
			}
			return bridges[i].To < bridges[j].To
		})
		res.Bridges = bridges
	}

	return res, nil
}
