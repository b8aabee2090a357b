package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshlens/algoconf"
	"github.com/katalvlaran/meshlens/core"
	"github.com/katalvlaran/meshlens/dispatch"
	"github.com/katalvlaran/meshlens/filewatch"
	"github.com/katalvlaran/meshlens/logging"
	"github.com/katalvlaran/meshlens/metrics"
	"github.com/katalvlaran/meshlens/snapshot"
)

var watchFlags struct {
	graph       string
	config      string
	metricsAddr string
	output      string
	debounce    time.Duration
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-dispatch whenever the snapshot or the registry file changes",
	Long: `Loads the snapshot and the registry, dispatches once, then watches both
files. Every change re-runs the enabled algorithms. A file that fails to load
is logged and the previous graph or registry stays in effect.

With --metrics-addr, dispatch counters and latencies are served at /metrics.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.StringVar(&watchFlags.graph, "graph", "", "Snapshot file, YAML or JSON (required)")
	f.StringVar(&watchFlags.config, "config", "", "Algorithm registry file, YAML or JSON (required)")
	f.StringVar(&watchFlags.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	f.StringVarP(&watchFlags.output, "output", "o", "text", "Report format: text or json")
	f.DurationVar(&watchFlags.debounce, "debounce", filewatch.DefaultDebounce, "Quiet period before a change is acted on")

	_ = watchCmd.MarkFlagRequired("graph")
	_ = watchCmd.MarkFlagRequired("config")
}

// watcher holds the live state of one watch session. Its methods run on the
// filewatch goroutine only.
type watcher struct {
	graphPath  string
	configPath string

	log   *slog.Logger
	store *algoconf.Store
	disp  *dispatch.Dispatcher
	out   func(*dispatch.Report)
	graph *core.Graph
}

func runWatch(cmd *cobra.Command, _ []string) error {
	log := logging.New("watch")

	g, err := snapshot.Load(watchFlags.graph)
	if err != nil {
		return fmt.Errorf("load graph: %w", err)
	}
	f, err := algoconf.LoadFile(watchFlags.config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	reg, err := f.Registry()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())
	collector, err := metrics.New(promReg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if watchFlags.metricsAddr != "" {
		srv := metricsServer(watchFlags.metricsAddr, promReg)
		go func() {
			log.Info("serving metrics", slog.String("addr", watchFlags.metricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server", slog.Any("err", err))
				cancel()
			}
		}()
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer done()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	out, format := cmd.OutOrStdout(), watchFlags.output
	w := &watcher{
		graphPath:  absPath(watchFlags.graph),
		configPath: absPath(watchFlags.config),
		log:        log,
		store:      algoconf.NewStore(reg),
		disp:       dispatch.New(dispatch.WithObserver(collector)),
		graph:      g,
		out: func(rep *dispatch.Report) {
			if err := writeReport(out, rep, format); err != nil {
				log.Error("write report", slog.Any("err", err))
			}
		},
	}
	w.dispatch(ctx)

	log.Info("watching", slog.String("graph", watchFlags.graph), slog.String("config", watchFlags.config))

	return filewatch.Watch(ctx, []string{watchFlags.graph, watchFlags.config},
		filewatch.Options{Debounce: watchFlags.debounce, Logger: log},
		func(changed []string) { w.onChange(ctx, changed) })
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}

	return filepath.Clean(p)
}

func metricsServer(addr string, g prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}

// onChange reloads whichever files changed and dispatches again.
func (w *watcher) onChange(ctx context.Context, changed []string) {
	for _, p := range changed {
		switch p {
		case w.graphPath:
			g, err := snapshot.Load(p)
			if err != nil {
				w.log.Warn("graph reload rejected", slog.String("path", p), slog.Any("err", err))
				continue
			}
			w.graph = g
			w.log.Info("graph reloaded", slog.Int("nodes", g.VertexCount()), slog.Int("edges", g.EdgeCount()))
		case w.configPath:
			if err := algoconf.Reload(p, w.store); err != nil {
				w.log.Warn("config reload rejected", slog.String("path", p), slog.Any("err", err))
				continue
			}
			w.log.Info("config reloaded", slog.Int("mask", int(w.store.Mask())))
		}
	}
	w.dispatch(ctx)
}

func (w *watcher) dispatch(ctx context.Context) {
	w.out(w.disp.Run(ctx, w.store.Snapshot(), w.graph))
}
