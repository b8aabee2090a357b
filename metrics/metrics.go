// Package metrics exports dispatch outcomes as Prometheus metrics.
//
// Collector implements dispatch.Observer; plug it in with
// dispatch.WithObserver and serve the registry with promhttp.
package metrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/meshlens/algoerr"
	"github.com/katalvlaran/meshlens/dispatch"
)

const (
	namespace = "meshlens"
	subsystem = "dispatch"
)

// Outcome status label values.
const (
	StatusOK                  = "ok"
	StatusMissingParameter    = "missing_parameter"
	StatusInvalidGraph        = "invalid_graph"
	StatusInsufficientHistory = "insufficient_history"
	StatusPanic               = "panic"
	StatusError               = "error"
)

// Collector records per-algorithm outcomes and per-dispatch totals.
type Collector struct {
	runs       *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	dispatches prometheus.Counter
	nodes      prometheus.Gauge
	edges      prometheus.Gauge
	failed     prometheus.Gauge
}

var _ dispatch.Observer = (*Collector)(nil)

// New creates a Collector and registers it with r. A nil r skips registration.
func New(r prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "algorithm_runs_total",
			Help:      "Algorithm executions by algorithm and outcome status",
		}, []string{"algorithm", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "algorithm_duration_seconds",
			Help:      "Wall time of one algorithm execution in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"algorithm"}),
		dispatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reports_total",
			Help:      "Completed dispatches",
		}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "last_graph_nodes",
			Help:      "Node count of the most recently dispatched snapshot",
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "last_graph_edges",
			Help:      "Edge count of the most recently dispatched snapshot",
		}),
		failed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "last_failed_algorithms",
			Help:      "Failed algorithms in the most recent dispatch",
		}),
	}
	if r != nil {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.runs.Describe(ch)
	c.duration.Describe(ch)
	c.dispatches.Describe(ch)
	c.nodes.Describe(ch)
	c.edges.Describe(ch)
	c.failed.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.runs.Collect(ch)
	c.duration.Collect(ch)
	c.dispatches.Collect(ch)
	c.nodes.Collect(ch)
	c.edges.Collect(ch)
	c.failed.Collect(ch)
}

// ObserveOutcome counts o under its status and records its duration.
func (c *Collector) ObserveOutcome(_ context.Context, o dispatch.Outcome) {
	alg := o.Kind.String()
	c.runs.WithLabelValues(alg, Status(o.Err)).Inc()
	c.duration.WithLabelValues(alg).Observe(o.Elapsed.Seconds())
}

// ObserveReport updates the per-dispatch series.
func (c *Collector) ObserveReport(_ context.Context, r *dispatch.Report) {
	c.dispatches.Inc()
	c.nodes.Set(float64(r.Nodes))
	c.edges.Set(float64(r.Edges))
	c.failed.Set(float64(len(r.Failed())))
}

// Runs returns the run counter for one algorithm and status.
func (c *Collector) Runs(algorithm, status string) prometheus.Counter {
	return c.runs.WithLabelValues(algorithm, status)
}

// Status maps an outcome error onto a bounded label value.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, dispatch.ErrAlgorithmPanic):
		return StatusPanic
	case errors.Is(err, algoerr.ErrMissingParameter):
		return StatusMissingParameter
	case errors.Is(err, algoerr.ErrInvalidGraph):
		return StatusInvalidGraph
	case errors.Is(err, algoerr.ErrInsufficientHistory):
		return StatusInsufficientHistory
	}

	return StatusError
}
