package mincut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshlens/algoerr"
	"github.com/katalvlaran/meshlens/core"
	"github.com/katalvlaran/meshlens/mincut"
	"github.com/katalvlaran/meshlens/params"
)

type wedge struct {
	u, v string
	w    float64
}

func build(t *testing.T, g *core.Graph, es []wedge) *core.Graph {
	t.Helper()
	for _, e := range es {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func run(t *testing.T, g *core.Graph) *mincut.Result {
	t.Helper()
	res, err := mincut.Run(g, mincut.DefaultOptions())
	require.NoError(t, err)

	return res
}

func TestRun_TwoNodes(t *testing.T) {
	g := build(t, core.NewGraph(), []wedge{{"A", "B", 3.5}})
	res := run(t, g)
	assert.Equal(t, 3.5, res.Weight)
	assert.Equal(t, [2][]string{{"A"}, {"B"}}, res.Partition)
	assert.Equal(t, []string{"e1"}, res.CutEdges)
	assert.Equal(t, 1, res.Phases)
}

// TestRun_StoerWagnerPaper uses the 8-vertex example from the original paper.
func TestRun_StoerWagnerPaper(t *testing.T) {
	g := build(t, core.NewGraph(), []wedge{
		{"1", "2", 2}, {"1", "5", 3}, {"2", "3", 3}, {"2", "5", 2},
		{"2", "6", 2}, {"3", "4", 4}, {"3", "7", 2}, {"4", "7", 2},
		{"4", "8", 2}, {"5", "6", 3}, {"6", "7", 1}, {"7", "8", 3},
	})
	res := run(t, g)
	assert.Equal(t, 4.0, res.Weight)
	assert.Equal(t, [2][]string{{"1", "2", "5", "6"}, {"3", "4", "7", "8"}}, res.Partition)
	assert.Equal(t, []string{"e3", "e11"}, res.CutEdges)
	assert.Equal(t, 7, res.Phases)
}

func TestRun_WeakBridgeBetweenTriangles(t *testing.T) {
	g := build(t, core.NewGraph(), []wedge{
		{"A", "B", 5}, {"B", "C", 5}, {"C", "A", 5},
		{"X", "Y", 5}, {"Y", "Z", 5}, {"Z", "X", 5},
		{"C", "X", 0.5},
	})
	res := run(t, g)
	assert.InDelta(t, 0.5, res.Weight, 1e-12)
	assert.Equal(t, [2][]string{{"A", "B", "C"}, {"X", "Y", "Z"}}, res.Partition)
	assert.Equal(t, []string{"e7"}, res.CutEdges)
}

func TestRun_ParallelEdgesSummedLoopsIgnored(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	build(t, g, []wedge{{"A", "B", 1}, {"A", "B", 2}, {"B", "C", 5}, {"A", "A", 100}})
	res := run(t, g)
	assert.Equal(t, 3.0, res.Weight)
	assert.Equal(t, [2][]string{{"A"}, {"B", "C"}}, res.Partition)
	assert.Equal(t, []string{"e1", "e2"}, res.CutEdges)
}

func TestRun_DisconnectedIsZero(t *testing.T) {
	g := build(t, core.NewGraph(), []wedge{{"A", "B", 1}, {"C", "D", 1}})
	require.NoError(t, g.AddVertex("E"))
	res := run(t, g)
	assert.Zero(t, res.Weight)
	assert.Equal(t, [2][]string{{"A", "B"}, {"C", "D", "E"}}, res.Partition)
	assert.Empty(t, res.CutEdges)
	assert.Zero(t, res.Phases)
}

func TestRun_TwoIsolatedVertices(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	res := run(t, g)
	assert.Zero(t, res.Weight)
}

func TestRun_InvalidGraphs(t *testing.T) {
	_, err := mincut.Run(core.NewGraph(), mincut.DefaultOptions())
	assert.ErrorIs(t, err, algoerr.ErrEmptyGraph)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	_, err = mincut.Run(g, mincut.DefaultOptions())
	assert.ErrorIs(t, err, mincut.ErrTooFewVertices)
	assert.ErrorIs(t, err, algoerr.ErrInvalidGraph)

	_, err = mincut.Run(nil, mincut.DefaultOptions())
	assert.ErrorIs(t, err, algoerr.ErrInvalidGraph)
}

func TestRunParams_Epsilon(t *testing.T) {
	g := build(t, core.NewGraph(), []wedge{{"A", "B", 1e-9}, {"B", "C", 2}})

	out, err := mincut.RunParams(g, params.New().Add(mincut.ParamEpsilon, 1e-6))
	require.NoError(t, err)
	res := out.(*mincut.Result)
	assert.Equal(t, [2][]string{{"A"}, {"B", "C"}}, res.Partition)

	_, err = mincut.RunParams(g, params.New().Add(mincut.ParamEpsilon, -1.0))
	assert.ErrorIs(t, err, algoerr.ErrMissingParameter)

	// wrong type: ignored, default used
	_, err = mincut.RunParams(g, params.New().Add(mincut.ParamEpsilon, "tiny"))
	assert.NoError(t, err)
}

func TestRun_Deterministic(t *testing.T) {
	mk := func() *core.Graph {
		return build(t, core.NewGraph(), []wedge{
			{"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1}, {"D", "A", 1},
		})
	}
	first := run(t, mk())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, run(t, mk()))
	}
	assert.Equal(t, 2.0, first.Weight)
}
