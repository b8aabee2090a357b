// SPDX-License-Identifier: MIT
// Package: meshlens/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn      = DefaultIDFn        ("0","1","2",...)
//   - rng       = nil                (pure unless seeded)
//   - weightFn  = DefaultWeightFn    (constant 1)
//   - start     = 2024-05-01T00:00Z, interval = 1m
//   - baseline  = -90, spread = 1, trend = 0, noise = 0

package builder

import (
	"math/rand"
	"time"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn

	// Sample history synthesis (Histories).
	start    time.Time
	interval time.Duration
	baseline float64 // value of node 0 at sample 0
	spread   float64 // per-node offset step
	trend    float64 // per-sample drift
	noise    float64 // Gaussian sigma, needs rng
}

const (
	defaultInterval = time.Minute
	defaultBaseline = -90.0
	defaultSpread   = 1.0
)

// DefaultStart stamps the first synthetic sample unless WithTimeline says otherwise.
var DefaultStart = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
		start:    DefaultStart,
		interval: defaultInterval,
		baseline: defaultBaseline,
		spread:   defaultSpread,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
