// SPDX-License-Identifier: MIT
// Package: meshlens/builder
//
// topology.go - deterministic topology constructors.
//
// Contract:
//   - Vertices are added via cfg.idFn in ascending index order, except the
//     fixed Star hub CenterVertexID.
//   - Edges are emitted in a stable, documented order, so edge IDs e1, e2, ...
//     are reproducible.
//   - Weights come from cfg.weightFn(cfg.rng).

package builder

import (
	"fmt"

	"github.com/katalvlaran/meshlens/core"
)

// CenterVertexID is the hub of Star.
const CenterVertexID = "Center"

const (
	methodPath       = "Path"
	methodCycle      = "Cycle"
	methodStar       = "Star"
	methodComplete   = "Complete"
	methodRandomMesh = "RandomMesh"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minMeshNodes     = 1
)

// Path builds P_n: edges (i-1)—i for i = 1..n-1. n ≥ 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: Path(n) plus the closing edge (n-1)—0. n ≥ 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a hub CenterVertexID with n-1 leaves idFn(1..n-1). n ≥ 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leaf, err)
			}
			if err := addEdge(g, cfg, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n with edges i—j for i < j in row-major order. n ≥ 1.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomMesh builds a connected random mesh: a random recursive tree
// (vertex i links to a uniformly chosen earlier vertex) plus every other
// pair i<j independently with probability p. Requires an RNG when n > 1.
//
// Complexity: O(n²) time, O(n²) bits for the adjacency check.
func RandomMesh(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minMeshNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomMesh, n, minMeshNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomMesh, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && n > 1 {
			return fmt.Errorf("%s: %w", methodRandomMesh, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomMesh, n); err != nil {
			return err
		}

		linked := make([][]bool, n)
		for i := range linked {
			linked[i] = make([]bool, n)
		}
		for i := 1; i < n; i++ {
			j := cfg.rng.Intn(i)
			linked[i][j], linked[j][i] = true, true
			if err := addEdge(g, cfg, methodRandomMesh, cfg.idFn(j), cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if linked[i][j] || cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, methodRandomMesh, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
