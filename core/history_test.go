package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshlens/core"
)

func TestVertexHistory_OrderedInsert(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA))

	require.NoError(t, g.AppendVertexSample(VertexA, at(10, 1)))
	require.NoError(t, g.AppendVertexSample(VertexA, at(0, 0)))
	require.NoError(t, g.AppendVertexSample(VertexA, at(5, 5)))
	// equal timestamp keeps insertion order
	require.NoError(t, g.AppendVertexSample(VertexA, at(5, 6)))

	h, err := g.VertexHistory(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 5, 6, 1}, core.Values(h))
	assert.Equal(t, 10*time.Second, core.Span(h))

	assert.ErrorIs(t, g.AppendVertexSample(VertexX, at(0, 0)), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AppendVertexSample(VertexEmpty, at(0, 0)), core.ErrEmptyVertexID)
}

func TestVertexHistory_SetCopies(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA))
	in := []core.Sample{at(2, 2), at(1, 1)}
	require.NoError(t, g.SetVertexHistory(VertexA, in))

	in[0].Value = 99
	h, err := g.VertexHistory(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, core.Values(h))

	// mutating the returned copy does not leak back
	h[0].Value = -1
	h2, _ := g.VertexHistory(VertexA)
	assert.Equal(t, 1.0, h2[0].Value)
}

func TestEdgeHistory(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge(VertexA, VertexB, 1)
	require.NoError(t, err)

	require.NoError(t, g.AppendEdgeSample(eid, at(1, -90)))
	require.NoError(t, g.SetEdgeHistory(eid, []core.Sample{at(3, -80), at(2, -85)}))
	h, err := g.EdgeHistory(eid)
	require.NoError(t, err)
	assert.Equal(t, []float64{-85, -80}, core.Values(h))

	_, err = g.EdgeHistory("e99")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.AppendEdgeSample("e99", at(0, 0)), core.ErrEdgeNotFound)

	st := g.Stats()
	assert.Equal(t, 1, st.SampledEdges)
	assert.Zero(t, st.SampledVertices)
}

func TestSpan_Short(t *testing.T) {
	assert.Zero(t, core.Span(nil))
	assert.Zero(t, core.Span([]core.Sample{at(4, 1)}))
}
