// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"time"

	"github.com/katalvlaran/meshlens/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
)

// t0 is a fixed epoch so sample ordering never depends on wall-clock time.
var t0 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// at returns a sample n seconds after t0.
func at(n int, v float64) core.Sample {
	return core.Sample{At: t0.Add(time.Duration(n) * time.Second), Value: v}
}

// edgeIDs projects edges onto their IDs.
func edgeIDs(es []*core.Edge) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ID
	}

	return out
}

// triangle builds A-B-C-A with weights 1,2,3.
func triangle() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge(VertexA, VertexB, 1)
	_, _ = g.AddEdge(VertexB, VertexC, 2)
	_, _ = g.AddEdge(VertexC, VertexA, 3)

	return g
}
