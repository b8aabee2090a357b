package dispatch_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/meshlens/algoconf"
	"github.com/katalvlaran/meshlens/algoerr"
	"github.com/katalvlaran/meshlens/articulation"
	"github.com/katalvlaran/meshlens/core"
	"github.com/katalvlaran/meshlens/dispatch"
	"github.com/katalvlaran/meshlens/logging"
	"github.com/katalvlaran/meshlens/mincut"
	"github.com/katalvlaran/meshlens/params"
)

var t0 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// mesh builds the path A-B-C where every node has three samples.
func mesh(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)
	for i, id := range []string{"A", "B", "C"} {
		for j := 0; j < 3; j++ {
			s := core.Sample{At: t0.Add(time.Duration(j) * time.Minute), Value: float64(i*10 + j)}
			require.NoError(t, g.AppendVertexSample(id, s))
		}
	}

	return g
}

// allOn enables every kind and gives diffusion its required T.
func allOn() *algoconf.Registry {
	reg := algoconf.New()
	reg.SetAlgorithms(algoconf.MaxMask)
	reg.SetParams(algoconf.DiffusionCentrality, params.New().Add("T", 2))

	return reg
}

func quiet() dispatch.Option { return dispatch.WithLogger(logging.Discard()) }

func TestRun_AllSucceed(t *testing.T) {
	rep := dispatch.New(quiet()).Run(context.Background(), allOn(), mesh(t))

	assert.Equal(t, algoconf.Kinds(), rep.Kinds())
	assert.Empty(t, rep.Failed())
	assert.Equal(t, 3, rep.Nodes)
	assert.Equal(t, 2, rep.Edges)

	o, ok := rep.Get(algoconf.ArticulationPoints)
	require.True(t, ok)
	assert.Equal(t, []string{"B"}, o.Result.(*articulation.Result).Points)

	o, _ = rep.Get(algoconf.GlobalMinCut)
	assert.Equal(t, 1.0, o.Result.(*mincut.Result).Weight)
}

func TestRun_MissingTFailsAlone(t *testing.T) {
	reg := allOn()
	reg.SetParams(algoconf.DiffusionCentrality, params.New())

	rep := dispatch.New(quiet()).Run(context.Background(), reg, mesh(t))

	require.Equal(t, 5, rep.Len())
	assert.Equal(t, []algoconf.Kind{algoconf.DiffusionCentrality}, rep.Failed())
	o, _ := rep.Get(algoconf.DiffusionCentrality)
	assert.ErrorIs(t, o.Err, algoerr.ErrMissingParameter)
	assert.Nil(t, o.Result)
	assert.False(t, o.OK())
}

func TestRun_EmptyGraphInvalidEverywhere(t *testing.T) {
	for name, g := range map[string]*core.Graph{"empty": core.NewGraph(), "nil": nil} {
		rep := dispatch.New(quiet()).Run(context.Background(), allOn(), g)
		require.Equal(t, 5, rep.Len(), name)
		for _, o := range rep.Outcomes {
			assert.ErrorIs(t, o.Err, algoerr.ErrInvalidGraph, "%s: %s", name, o.Kind)
		}
	}
}

func TestRun_EmptyGraphBeatsBadParameters(t *testing.T) {
	reg := allOn()
	reg.SetParams(algoconf.DiffusionCentrality, params.New())
	reg.SetParams(algoconf.GlobalMinCut, params.New().Add("epsilon", -1.0))
	reg.SetParams(algoconf.MostSimilarTimeline, params.New().Add("metric", "cosine"))
	reg.SetParams(algoconf.PredictedState, params.New().Add("method", "arima"))

	for name, g := range map[string]*core.Graph{"empty": core.NewGraph(), "nil": nil} {
		rep := dispatch.New(quiet()).Run(context.Background(), reg, g)
		require.Equal(t, 5, rep.Len(), name)
		for _, o := range rep.Outcomes {
			assert.ErrorIs(t, o.Err, algoerr.ErrInvalidGraph, "%s: %s", name, o.Kind)
			assert.NotErrorIs(t, o.Err, algoerr.ErrMissingParameter, "%s: %s", name, o.Kind)
		}
	}
}

func TestRun_DisabledKindsAbsent(t *testing.T) {
	reg := allOn()
	reg.SetAlgorithms(0b00101)

	rep := dispatch.New(quiet()).Run(context.Background(), reg, mesh(t))
	assert.Equal(t, []algoconf.Kind{algoconf.ArticulationPoints, algoconf.DiffusionCentrality}, rep.Kinds())
	assert.False(t, rep.Has(algoconf.GlobalMinCut))

	rep = dispatch.New(quiet()).Run(context.Background(), algoconf.New(), mesh(t))
	assert.Zero(t, rep.Len())

	rep = dispatch.New(quiet()).Run(context.Background(), nil, mesh(t))
	assert.Zero(t, rep.Len())
}

func TestRun_PanicIsolated(t *testing.T) {
	d := dispatch.New(quiet(), dispatch.WithRunner(algoconf.GlobalMinCut, func(*core.Graph, *params.Bag) (any, error) {
		panic("index out of range")
	}))

	rep := d.Run(context.Background(), allOn(), mesh(t))
	require.Equal(t, 5, rep.Len())
	assert.Equal(t, []algoconf.Kind{algoconf.GlobalMinCut}, rep.Failed())
	o, _ := rep.Get(algoconf.GlobalMinCut)
	assert.ErrorIs(t, o.Err, dispatch.ErrAlgorithmPanic)
	assert.Contains(t, o.Err.Error(), "index out of range")
}

func TestWithRunner_CustomAndReset(t *testing.T) {
	var seen *params.Bag
	custom := func(_ *core.Graph, b *params.Bag) (any, error) {
		seen = b
		return "ok", nil
	}
	reg := algoconf.New()
	reg.SetArticulationPoints(true)
	reg.SetParams(algoconf.ArticulationPoints, params.New().Add("include_bridges", false))

	rep := dispatch.New(quiet(), dispatch.WithRunner(algoconf.ArticulationPoints, custom)).
		Run(context.Background(), reg, mesh(t))
	o, _ := rep.Get(algoconf.ArticulationPoints)
	assert.Equal(t, "ok", o.Result)
	v, _ := params.Get[bool](seen, "include_bridges")
	assert.False(t, v)

	rep = dispatch.New(quiet(),
		dispatch.WithRunner(algoconf.ArticulationPoints, custom),
		dispatch.WithRunner(algoconf.ArticulationPoints, nil),
		dispatch.WithRunner(algoconf.Kind(9), custom),
	).Run(context.Background(), reg, mesh(t))
	o, _ = rep.Get(algoconf.ArticulationPoints)
	assert.IsType(t, &articulation.Result{}, o.Result)
}

func TestRun_GraphUntouched(t *testing.T) {
	g := mesh(t)
	before := g.Clone()

	dispatch.New(quiet()).Run(context.Background(), allOn(), g)

	assert.Empty(t, cmp.Diff(before.Stats(), g.Stats()))
	assert.Equal(t, before.Vertices(), g.Vertices())
	for _, id := range g.Vertices() {
		want, _ := before.VertexHistory(id)
		got, _ := g.VertexHistory(id)
		assert.Empty(t, cmp.Diff(want, got), id)
	}
}

func TestRun_Tracing(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	reg := allOn()
	reg.SetAlgorithms(0b00011)
	reg.SetParams(algoconf.GlobalMinCut, params.New().Add("epsilon", -1.0))

	dispatch.New(quiet(), dispatch.WithTracer(tp.Tracer("test"))).Run(context.Background(), reg, mesh(t))

	spans := rec.Ended()
	require.Len(t, spans, 3)
	names := []string{spans[0].Name(), spans[1].Name(), spans[2].Name()}
	assert.Equal(t, []string{"dispatch.articulation_points", "dispatch.global_min_cut", "dispatch.Run"}, names)

	root := spans[2]
	for _, child := range spans[:2] {
		assert.Equal(t, root.SpanContext().SpanID(), child.Parent().SpanID())
	}
	assert.Len(t, spans[1].Events(), 1, "error recorded on the failing span")
	assert.Empty(t, spans[0].Events())
}

type recorder struct {
	mu       sync.Mutex
	outcomes []algoconf.Kind
	reports  int
}

func (r *recorder) ObserveOutcome(_ context.Context, o dispatch.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o.Kind)
}

func (r *recorder) ObserveReport(context.Context, *dispatch.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports++
}

func TestRun_Observer(t *testing.T) {
	obs := &recorder{}
	reg := allOn()
	reg.SetAlgorithms(0b11000)

	dispatch.New(quiet(), dispatch.WithObserver(obs), dispatch.WithObserver(nil)).Run(context.Background(), reg, mesh(t))

	assert.Equal(t, []algoconf.Kind{algoconf.MostSimilarTimeline, algoconf.PredictedState}, obs.outcomes)
	assert.Equal(t, 1, obs.reports)
}

func TestRunContext(t *testing.T) {
	release := make(chan struct{})
	slow := func(*core.Graph, *params.Bag) (any, error) {
		<-release
		return nil, nil
	}
	d := dispatch.New(quiet(), dispatch.WithRunner(algoconf.ArticulationPoints, slow))
	reg := algoconf.New()
	reg.SetArticulationPoints(true)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	rep, err := d.RunContext(ctx, reg, mesh(t))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, rep)
	close(release)

	rep, err = dispatch.New(quiet()).RunContext(context.Background(), allOn(), mesh(t))
	require.NoError(t, err)
	assert.Equal(t, 5, rep.Len())

	done, stop := context.WithCancel(context.Background())
	stop()
	_, err = d.RunContext(done, reg, mesh(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBatch(t *testing.T) {
	small := core.NewGraph()
	_, _ = small.AddEdge("X", "Y", 1)
	graphs := []*core.Graph{mesh(t), small, core.NewGraph()}

	reps, err := dispatch.New(quiet()).RunBatch(context.Background(), allOn(), graphs, 2)
	require.NoError(t, err)
	require.Len(t, reps, 3)
	assert.Equal(t, []int{3, 2, 0}, []int{reps[0].Nodes, reps[1].Nodes, reps[2].Nodes})
	assert.Empty(t, reps[0].Failed())
	assert.Len(t, reps[2].Failed(), 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dispatch.New(quiet()).RunBatch(ctx, allOn(), graphs, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReport_JSON(t *testing.T) {
	reg := allOn()
	reg.SetAlgorithms(0b00101)
	reg.SetParams(algoconf.DiffusionCentrality, params.New())

	rep := dispatch.New(quiet()).Run(context.Background(), reg, mesh(t))
	raw, err := json.Marshal(rep)
	require.NoError(t, err)

	var doc struct {
		ID       string `json:"id"`
		Nodes    int    `json:"nodes"`
		Outcomes []struct {
			Kind   string          `json:"kind"`
			OK     bool            `json:"ok"`
			Result json.RawMessage `json:"result"`
			Error  string          `json:"error"`
		} `json:"outcomes"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, rep.ID.String(), doc.ID)
	assert.Equal(t, 3, doc.Nodes)
	require.Len(t, doc.Outcomes, 2)
	assert.Equal(t, "articulation_points", doc.Outcomes[0].Kind)
	assert.True(t, doc.Outcomes[0].OK)
	assert.NotEmpty(t, doc.Outcomes[0].Result)
	assert.Equal(t, "diffusion_centrality", doc.Outcomes[1].Kind)
	assert.False(t, doc.Outcomes[1].OK)
	assert.Contains(t, doc.Outcomes[1].Error, `parameter "T"`)
	assert.Empty(t, doc.Outcomes[1].Result)

	assert.True(t, errors.Is(rep.Outcomes[1].Err, algoerr.ErrMissingParameter))
}
