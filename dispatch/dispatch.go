package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/meshlens/algoconf"
	"github.com/katalvlaran/meshlens/articulation"
	"github.com/katalvlaran/meshlens/core"
	"github.com/katalvlaran/meshlens/diffusion"
	"github.com/katalvlaran/meshlens/logging"
	"github.com/katalvlaran/meshlens/mincut"
	"github.com/katalvlaran/meshlens/params"
	"github.com/katalvlaran/meshlens/predict"
	"github.com/katalvlaran/meshlens/timeline"
)

const tracerName = "meshlens.dispatch"

// ErrAlgorithmPanic wraps a panic recovered from a Runner.
var ErrAlgorithmPanic = errors.New("dispatch: algorithm panicked")

// Runner executes one algorithm against a snapshot with its parameter bag.
// It must not mutate g or b.
type Runner func(g *core.Graph, b *params.Bag) (any, error)

// Observer is notified after every outcome and every report.
// Calls happen on the dispatching goroutine.
type Observer interface {
	ObserveOutcome(ctx context.Context, o Outcome)
	ObserveReport(ctx context.Context, r *Report)
}

// DefaultRunner returns the built-in implementation of k, or nil.
func DefaultRunner(k algoconf.Kind) Runner {
	switch k {
	case algoconf.ArticulationPoints:
		return articulation.RunParams
	case algoconf.GlobalMinCut:
		return mincut.RunParams
	case algoconf.DiffusionCentrality:
		return diffusion.RunParams
	case algoconf.MostSimilarTimeline:
		return timeline.RunParams
	case algoconf.PredictedState:
		return predict.RunParams
	}

	return nil
}

// Dispatcher runs the enabled algorithms of a Registry against a graph.
// It holds no per-dispatch state and is safe for concurrent use.
type Dispatcher struct {
	runners   [algoconf.NumKinds]Runner
	logger    *slog.Logger
	tracer    trace.Tracer
	observers []Observer
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithTracer sets the tracer. nil keeps the global provider's tracer.
func WithTracer(t trace.Tracer) Option {
	return func(d *Dispatcher) {
		if t != nil {
			d.tracer = t
		}
	}
}

// WithObserver adds an observer. Observers are called in the order added.
func WithObserver(o Observer) Option {
	return func(d *Dispatcher) {
		if o != nil {
			d.observers = append(d.observers, o)
		}
	}
}

// WithRunner replaces the implementation of k. A nil r restores the default.
// Invalid kinds are ignored.
func WithRunner(k algoconf.Kind, r Runner) Option {
	return func(d *Dispatcher) {
		if !k.Valid() {
			return
		}
		if r == nil {
			r = DefaultRunner(k)
		}
		d.runners[k] = r
	}
}

// New builds a Dispatcher wired to the built-in algorithms.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		logger: logging.New("dispatch"),
		tracer: otel.Tracer(tracerName),
	}
	for _, k := range algoconf.Kinds() {
		d.runners[k] = DefaultRunner(k)
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Run executes every active kind of reg against g in kind order and collects
// one Outcome per active kind. A failing or panicking algorithm affects only
// its own slot. ctx carries tracing and logging values; it never interrupts
// an algorithm.
//
// reg and g must not be mutated during Run: pass a Store snapshot (or call
// inside Store.View) and a cloned graph.
func (d *Dispatcher) Run(ctx context.Context, reg *algoconf.Registry, g *core.Graph) *Report {
	rep := &Report{ID: uuid.New(), Started: time.Now()}
	if g != nil {
		rep.Nodes, rep.Edges = g.VertexCount(), g.EdgeCount()
	}
	if reg == nil {
		reg = algoconf.New()
	}

	ctx, span := d.tracer.Start(ctx, "dispatch.Run", trace.WithAttributes(
		attribute.String("dispatch.id", rep.ID.String()),
		attribute.Int("dispatch.mask", int(reg.Mask())),
		attribute.Int("graph.nodes", rep.Nodes),
		attribute.Int("graph.edges", rep.Edges),
	))
	defer span.End()

	for _, k := range algoconf.Kinds() {
		if !reg.Active(k) {
			continue
		}
		o := d.runOne(ctx, k, g, reg.Params(k))
		rep.Outcomes = append(rep.Outcomes, o)
		for _, obs := range d.observers {
			obs.ObserveOutcome(ctx, o)
		}
	}

	failed := len(rep.Failed())
	span.SetAttributes(attribute.Int("dispatch.failed", failed))
	if failed > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d of %d algorithms failed", failed, rep.Len()))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	d.logger.DebugContext(ctx, "dispatch complete",
		slog.String("id", rep.ID.String()),
		slog.Int("ran", rep.Len()),
		slog.Int("failed", failed),
		slog.Duration("elapsed", time.Since(rep.Started)),
	)
	for _, obs := range d.observers {
		obs.ObserveReport(ctx, rep)
	}

	return rep
}

func (d *Dispatcher) runOne(ctx context.Context, k algoconf.Kind, g *core.Graph, b *params.Bag) (o Outcome) {
	ctx, span := d.tracer.Start(ctx, "dispatch."+k.String(),
		trace.WithAttributes(attribute.String("algorithm", k.String())))
	defer span.End()

	o.Kind = k
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			o.Err = fmt.Errorf("%w: %s: %v", ErrAlgorithmPanic, k, r)
		}
		o.Elapsed = time.Since(start)

		if o.Err != nil {
			o.Result = nil
			span.RecordError(o.Err)
			span.SetStatus(codes.Error, o.Err.Error())
			d.logger.WarnContext(ctx, "algorithm failed",
				slog.String("algorithm", k.String()),
				slog.Any("err", o.Err),
				slog.Duration("elapsed", o.Elapsed),
			)
			return
		}
		span.SetStatus(codes.Ok, "")
		d.logger.DebugContext(ctx, "algorithm ran",
			slog.String("algorithm", k.String()),
			slog.Duration("elapsed", o.Elapsed),
		)
	}()

	o.Result, o.Err = d.runners[k](g, b)

	return o
}

// RunContext runs Run on its own goroutine and returns ctx.Err() if ctx ends
// first. The abandoned dispatch still completes in the background and its
// report is discarded.
func (d *Dispatcher) RunContext(ctx context.Context, reg *algoconf.Registry, g *core.Graph) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	done := make(chan *Report, 1)
	go func() { done <- d.Run(context.WithoutCancel(ctx), reg, g) }()

	select {
	case rep := <-done:
		return rep, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// RunBatch dispatches reg over several snapshots with at most limit running
// at once (limit <= 0 means unbounded). Reports are returned in input order.
// The only error is ctx cancellation, in which case unstarted slots are nil.
func (d *Dispatcher) RunBatch(ctx context.Context, reg *algoconf.Registry, graphs []*core.Graph, limit int) ([]*Report, error) {
	out := make([]*Report, len(graphs))
	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, g := range graphs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = d.Run(ctx, reg, g)

			return nil
		})
	}

	return out, eg.Wait()
}
