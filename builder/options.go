// SPDX-License-Identifier: MIT
// Package: meshlens/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
	"time"
)

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithTimeline sets the first sample time and the sampling interval (> 0).
func WithTimeline(start time.Time, interval time.Duration) BuilderOption {
	if interval <= 0 {
		panic("builder: WithTimeline(interval<=0)")
	}
	return func(c *builderConfig) {
		c.start, c.interval = start, interval
	}
}

// WithSignal shapes synthetic histories: node i at sample k reads
// baseline + i·spread + k·trend (+ noise).
func WithSignal(baseline, spread, trend float64) BuilderOption {
	return func(c *builderConfig) {
		c.baseline, c.spread, c.trend = baseline, spread, trend
	}
}

// WithNoise sets Gaussian noise sigma (>= 0) for histories.
// Noise is drawn only when an RNG is configured.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		c.noise = sigma
	}
}
