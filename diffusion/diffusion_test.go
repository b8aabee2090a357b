package diffusion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshlens/algoerr"
	"github.com/katalvlaran/meshlens/core"
	"github.com/katalvlaran/meshlens/diffusion"
	"github.com/katalvlaran/meshlens/params"
)

func path3(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)

	return g
}

func TestRun_PathTwoSteps(t *testing.T) {
	res, err := diffusion.Run(path3(t), diffusion.Options{Steps: 2, Q: 0.5})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.Scores["A"], 1e-12)
	assert.InDelta(t, 1.5, res.Scores["B"], 1e-12)
	assert.InDelta(t, 1.0, res.Scores["C"], 1e-12)
	assert.Equal(t, []string{"B", "A", "C"}, rankIDs(res))
	assert.Equal(t, 2, res.Steps)
}

func TestRun_StarDegreeAtOneStep(t *testing.T) {
	g := core.NewGraph()
	for _, leaf := range []string{"L1", "L2", "L3"} {
		_, _ = g.AddEdge("Hub", leaf, 1)
	}
	res, err := diffusion.Run(g, diffusion.Options{Steps: 1, Q: 1})
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Scores["Hub"])
	assert.Equal(t, 1.0, res.Scores["L2"])
	assert.Equal(t, "Hub", res.Ranking[0].ID)
}

func TestRun_WeightedAndMultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "A", 9)

	unweighted, err := diffusion.Run(g, diffusion.Options{Steps: 1, Q: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 0.5, unweighted.Scores["A"], "parallel links count once, loops never")

	weighted, err := diffusion.Run(g, diffusion.Options{Steps: 1, Q: 0.5, Weighted: true})
	require.NoError(t, err)
	assert.Equal(t, 1.5, weighted.Scores["A"])
}

func TestRun_IsolatedNodeScoresZero(t *testing.T) {
	g := path3(t)
	require.NoError(t, g.AddVertex("Z"))
	res, err := diffusion.Run(g, diffusion.Options{Steps: 3, Q: 0.5})
	require.NoError(t, err)
	assert.Zero(t, res.Scores["Z"])
	assert.Equal(t, "Z", res.Ranking[len(res.Ranking)-1].ID)
}

func TestFromParams_RequiresT(t *testing.T) {
	_, err := diffusion.FromParams(params.New())
	assert.ErrorIs(t, err, algoerr.ErrMissingParameter)

	// present with the wrong type is the same as absent
	_, err = diffusion.FromParams(params.New().Add("T", 3.0))
	assert.ErrorIs(t, err, algoerr.ErrMissingParameter)

	_, err = diffusion.FromParams(params.New().Add("T", 0))
	assert.ErrorIs(t, err, algoerr.ErrMissingParameter)
	_, err = diffusion.FromParams(params.New().Add("T", -2))
	assert.ErrorIs(t, err, algoerr.ErrMissingParameter)

	var pe *algoerr.ParamError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "T", pe.Key)
}

func TestFromParams_Ranges(t *testing.T) {
	for _, q := range []float64{0, -0.1, 1.5} {
		_, err := diffusion.FromParams(params.New().Add("T", 2).Add("q", q))
		assert.ErrorIs(t, err, algoerr.ErrMissingParameter, "q=%v", q)
	}
	_, err := diffusion.FromParams(params.New().Add("T", 2).Add("top_k", -1))
	assert.Error(t, err)

	opts, err := diffusion.FromParams(params.New().Add("T", 4).Add("q", 0.2).Add("weighted", true).Add("top_k", 2))
	require.NoError(t, err)
	assert.Equal(t, diffusion.Options{Steps: 4, Q: 0.2, Weighted: true, TopK: 2}, opts)
}

func TestRunParams_TopKAndEmpty(t *testing.T) {
	out, err := diffusion.RunParams(path3(t), params.New().Add("T", 2).Add("top_k", 1))
	require.NoError(t, err)
	res := out.(*diffusion.Result)
	assert.Len(t, res.Ranking, 1)
	assert.Len(t, res.Scores, 3)

	_, err = diffusion.RunParams(core.NewGraph(), params.New().Add("T", 2))
	assert.ErrorIs(t, err, algoerr.ErrInvalidGraph)

	_, err = diffusion.Run(path3(t), diffusion.DefaultOptions())
	assert.ErrorIs(t, err, algoerr.ErrMissingParameter)
}

func rankIDs(r *diffusion.Result) []string {
	out := make([]string, len(r.Ranking))
	for i, x := range r.Ranking {
		out[i] = x.ID
	}

	return out
}

func TestRun_OverflowIsAnError(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("!a1", "!b2", 1e300)
	require.NoError(t, err)

	opts := diffusion.DefaultOptions()
	opts.Steps = 4
	opts.Q = 1
	opts.Weighted = true
	res, err := diffusion.Run(g, opts)
	assert.Nil(t, res)
	var pe *algoerr.ParamError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, diffusion.ParamSteps, pe.Key)

	// the same graph unweighted stays finite
	opts.Weighted = false
	res, err = diffusion.Run(g, opts)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, res.Scores["!a1"], 1e-12)
}
