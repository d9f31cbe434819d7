// SPDX-License-Identifier: MIT
// Package: metro/builder
//
// impl_random_sparse.go — RandomSparse(n, p): Erdős–Rényi-like generator.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices) and n ≤ g.VertexCount().
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Iterates unordered pairs {i, j}, i < j, i asc then j asc; each edge is
//     kept independently with probability p. One weight draw per kept edge.
//
// Determinism: fixed trial order ⇒ identical graphs for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/metro/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples each of the n(n-1)/2
// vertex pairs independently with probability p.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := requireVertices(methodRandomSparse, g, n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p ∈ {0,1} is decided without consuming the RNG.
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
