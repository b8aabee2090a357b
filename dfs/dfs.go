package dfs

import (
	"fmt"

	"github.com/katalvlaran/meshlens/core"
)

// frame is one vertex on the explicit DFS stack.
type frame struct {
	id    string
	links []*core.Edge
	next  int
}

// DFS performs depth-first search on g. With WithFullTraversal it covers
// every component in vertex-ID order; otherwise it starts only from startID.
// Self-loops are never followed. The walk keeps its own stack, so long
// chains do not grow the goroutine stack.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	res := &DFSResult{
		Order:   make([]string, 0, len(vertices)),
		Depth:   make(map[string]int, len(vertices)),
		Parent:  make(map[string]string, len(vertices)),
		Visited: make(map[string]bool, len(vertices)),
	}

	roots := []string{startID}
	if dopts.FullTraversal {
		roots = vertices
	}
	stack := make([]frame, 0, 64)
	for _, root := range roots {
		if res.Visited[root] {
			continue
		}
		res.Roots = append(res.Roots, root)
		if err := walk(g, root, &dopts, res, stack[:0]); err != nil {
			return res, err
		}
	}

	return res, nil
}

// walk explores the tree of root, appending vertices to res.Order as they finish.
func walk(g *core.Graph, root string, opts *DFSOptions, res *DFSResult, stack []frame) error {
	push := func(id string, depth int) error {
		links, err := g.Neighbors(id)
		if err != nil {
			res.Order = nil
			return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
		}
		res.Visited[id] = true
		res.Depth[id] = depth
		stack = append(stack, frame{id: id, links: links})

		return nil
	}
	if err := push(root, 0); err != nil {
		return err
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.links) {
			res.Order = append(res.Order, top.id)
			stack = stack[:len(stack)-1]
			continue
		}
		e := top.links[top.next]
		top.next++
		if e.IsLoop() {
			continue
		}
		from, to := top.id, e.Other(top.id)
		if opts.FilterEdge != nil && !opts.FilterEdge(from, to, e.Weight) {
			res.SkippedEdges++
			continue
		}
		if res.Visited[to] {
			continue
		}
		res.Parent[to] = from
		if err := push(to, res.Depth[from]+1); err != nil {
			return err
		}
	}

	return nil
}
