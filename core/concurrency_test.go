// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshlens/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls on a multigraph are safe.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	errs := make(chan error, num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge(VertexX, fmt.Sprintf("V%d", id), float64(id))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors(VertexX)
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentFeedAndSnapshot feeds samples while snapshots are taken.
func TestConcurrentFeedAndSnapshot(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(VertexA, VertexB, 1)
	require.NoError(t, err)

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_ = g.AppendVertexSample(VertexA, at(i, float64(i)))
			_ = g.AppendEdgeSample("e1", at(i, float64(-i)))
		}
	}()
	snaps := make([]*core.Graph, 0, rounds)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			snaps = append(snaps, g.Clone())
		}
	}()
	wg.Wait()

	// every snapshot is internally sorted regardless of when it was taken
	for _, s := range snaps {
		h, err := s.VertexHistory(VertexA)
		require.NoError(t, err)
		for i := 1; i < len(h); i++ {
			require.False(t, h[i].At.Before(h[i-1].At))
		}
	}
}
