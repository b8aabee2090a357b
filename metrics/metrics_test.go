package metrics_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshlens/algoconf"
	"github.com/katalvlaran/meshlens/algoerr"
	"github.com/katalvlaran/meshlens/core"
	"github.com/katalvlaran/meshlens/dispatch"
	"github.com/katalvlaran/meshlens/logging"
	"github.com/katalvlaran/meshlens/metrics"
	"github.com/katalvlaran/meshlens/params"
)

func TestStatus(t *testing.T) {
	for want, err := range map[string]error{
		metrics.StatusOK:                  nil,
		metrics.StatusPanic:               fmt.Errorf("%w: boom", dispatch.ErrAlgorithmPanic),
		metrics.StatusMissingParameter:    algoerr.Missing("diffusion", "T", "int"),
		metrics.StatusInvalidGraph:        fmt.Errorf("mincut: %w", algoerr.ErrEmptyGraph),
		metrics.StatusInsufficientHistory: algoerr.ErrInsufficientHistory,
		metrics.StatusError:               errors.New("disk on fire"),
	} {
		assert.Equal(t, want, metrics.Status(err))
	}
}

func TestCollector_ObservesDispatch(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)

	conf := algoconf.New()
	conf.SetAlgorithms(0b00111)
	conf.SetParams(algoconf.DiffusionCentrality, params.New())

	d := dispatch.New(dispatch.WithLogger(logging.Discard()), dispatch.WithObserver(c))
	d.Run(context.Background(), conf, g)
	d.Run(context.Background(), conf, g)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Runs("articulation_points", metrics.StatusOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Runs("global_min_cut", metrics.StatusOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Runs("diffusion_centrality", metrics.StatusMissingParameter)))

	expected := `
# HELP meshlens_dispatch_reports_total Completed dispatches
# TYPE meshlens_dispatch_reports_total counter
meshlens_dispatch_reports_total 2
# HELP meshlens_dispatch_last_graph_nodes Node count of the most recently dispatched snapshot
# TYPE meshlens_dispatch_last_graph_nodes gauge
meshlens_dispatch_last_graph_nodes 3
# HELP meshlens_dispatch_last_failed_algorithms Failed algorithms in the most recent dispatch
# TYPE meshlens_dispatch_last_failed_algorithms gauge
meshlens_dispatch_last_failed_algorithms 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"meshlens_dispatch_reports_total",
		"meshlens_dispatch_last_graph_nodes",
		"meshlens_dispatch_last_failed_algorithms",
	))

	n, err := testutil.GatherAndCount(reg, "meshlens_dispatch_algorithm_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, n, "one histogram per algorithm")
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	assert.Error(t, err)

	c, err := metrics.New(nil)
	require.NoError(t, err)
	assert.NotNil(t, c)
}
