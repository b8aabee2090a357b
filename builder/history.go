// SPDX-License-Identifier: MIT
// Package: meshlens/builder
//
// history.go - synthetic sample histories.
//
// Node i (in sorted-ID order) at sample k reads
//
//	baseline + i·spread + k·trend + N(0, noise²)
//
// and edge e at sample k reads weight(e) + k·trend + N(0, noise²).
// Sample k is stamped start + k·interval.

package builder

import (
	"fmt"
	"time"

	"github.com/katalvlaran/meshlens/core"
)

const methodHistories = "Histories"

// Histories attaches k samples to every vertex and edge already in g.
// Apply it after the topology constructors. k = 0 is a no-op.
func Histories(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < 0 {
			return fmt.Errorf("%s: k=%d < 0: %w", methodHistories, k, ErrConstructFailed)
		}
		if k == 0 {
			return nil
		}

		for i, id := range g.Vertices() {
			level := cfg.baseline + float64(i)*cfg.spread
			if err := g.SetVertexHistory(id, series(cfg, level, k)); err != nil {
				return fmt.Errorf("%s: vertex %s: %w", methodHistories, id, err)
			}
		}
		for _, e := range g.Edges() {
			if err := g.SetEdgeHistory(e.ID, series(cfg, e.Weight, k)); err != nil {
				return fmt.Errorf("%s: edge %s: %w", methodHistories, e.ID, err)
			}
		}

		return nil
	}
}

func series(cfg builderConfig, level float64, k int) []core.Sample {
	out := make([]core.Sample, k)
	for s := 0; s < k; s++ {
		v := level + float64(s)*cfg.trend
		if cfg.noise > 0 && cfg.rng != nil {
			v += cfg.rng.NormFloat64() * cfg.noise
		}
		out[s] = core.Sample{At: cfg.start.Add(time.Duration(s) * cfg.interval), Value: v}
	}

	return out
}
