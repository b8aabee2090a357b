// SPDX-License-Identifier: MIT
// Package: meshlens/builder
//
// api.go - public entry point for fixture construction.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs and histories.
//   - Constructors return sentinel errors; only option constructors panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meshlens/core"
)

// Constructor applies a deterministic graph mutation using the resolved builderConfig.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts, and applies
// every constructor in order. The first constructor error is wrapped with
// "BuildGraph: %w" and returned; no partial graph is returned.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Topology names accepted by ByName.
const (
	TopologyPath     = "path"
	TopologyCycle    = "cycle"
	TopologyStar     = "star"
	TopologyComplete = "complete"
	TopologyMesh     = "mesh"
)

// Topologies lists the names accepted by ByName.
func Topologies() []string {
	return []string{TopologyPath, TopologyCycle, TopologyStar, TopologyComplete, TopologyMesh}
}

// ByName maps a topology name to its constructor. p is used by "mesh" only.
func ByName(name string, n int, p float64) (Constructor, error) {
	switch name {
	case TopologyPath:
		return Path(n), nil
	case TopologyCycle:
		return Cycle(n), nil
	case TopologyStar:
		return Star(n), nil
	case TopologyComplete:
		return Complete(n), nil
	case TopologyMesh:
		return RandomMesh(n, p), nil
	}

	return nil, fmt.Errorf("builder: unknown topology %q: %w", name, ErrConstructFailed)
}
