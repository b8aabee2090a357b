// SPDX-License-Identifier: MIT
//
// File: methods_history.go
// Role: Per-vertex and per-edge sample histories.
// Determinism:
//   - Histories are kept sorted by Sample.At ascending; equal timestamps keep insertion order.
// Concurrency:
//   - Vertex histories under muVert, edge histories under muEdgeAdj.
//   - Readers always receive copies.

package core

import (
	"sort"
	"time"
)

// AppendVertexSample inserts s into the history of vertex id, keeping time order.
func (g *Graph) AppendVertexSample(id string, s Sample) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.History = insertSample(v.History, s)

	return nil
}

// SetVertexHistory replaces the history of vertex id with a sorted copy of samples.
func (g *Graph) SetVertexHistory(id string, samples []Sample) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.History = sortedCopy(samples)

	return nil
}

// VertexHistory returns a copy of the history of vertex id.
func (g *Graph) VertexHistory(id string) ([]Sample, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return copySamples(v.History), nil
}

// AppendEdgeSample inserts s into the history of edge eid, keeping time order.
func (g *Graph) AppendEdgeSample(eid string, s Sample) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	e.History = insertSample(e.History, s)

	return nil
}

// SetEdgeHistory replaces the history of edge eid with a sorted copy of samples.
func (g *Graph) SetEdgeHistory(eid string, samples []Sample) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	e.History = sortedCopy(samples)

	return nil
}

// EdgeHistory returns a copy of the history of edge eid.
func (g *Graph) EdgeHistory(eid string) ([]Sample, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return copySamples(e.History), nil
}

// Values projects samples onto their values.
func Values(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Value
	}

	return out
}

// Span returns the time between the first and last sample, or 0.
func Span(samples []Sample) time.Duration {
	if len(samples) < 2 {
		return 0
	}

	return samples[len(samples)-1].At.Sub(samples[0].At)
}

// insertSample places s after every sample with At <= s.At.
func insertSample(h []Sample, s Sample) []Sample {
	i := sort.Search(len(h), func(i int) bool { return h[i].At.After(s.At) })
	h = append(h, Sample{})
	copy(h[i+1:], h[i:])
	h[i] = s

	return h
}

func sortedCopy(samples []Sample) []Sample {
	out := copySamples(samples)
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })

	return out
}

func copySamples(samples []Sample) []Sample {
	if len(samples) == 0 {
		return nil
	}
	out := make([]Sample, len(samples))
	copy(out, samples)

	return out
}
