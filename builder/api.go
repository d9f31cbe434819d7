// SPDX-License-Identifier: MIT
// Package builder produces deterministic metro.graph fixtures: paths, cycles,
// complete graphs, stars, grids and random sparse networks.
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g with n
//     vertices, resolves cfg, runs cons in order.
//   - Constructors address vertices by dense index and must fit inside n;
//     otherwise they return ErrTooFewVertices without touching g.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/metro/graph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate parameters before the first
// AddEdge and preserve determinism for the same config and call order.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates a graph with n vertices, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// requireVertices reports ErrTooFewVertices when the constructor needs more
// vertices than g provides or fewer than its own minimum.
func requireVertices(method string, g *graph.Graph, need, min int) error {
	if need < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, need, min, ErrTooFewVertices)
	}
	if need > g.VertexCount() {
		return fmt.Errorf("%s: needs %d vertices, graph has %d: %w",
			method, need, g.VertexCount(), ErrTooFewVertices)
	}

	return nil
}

// addEdge draws one weight and inserts {u, v}, wrapping failures with method context.
func addEdge(method string, g *graph.Graph, cfg builderConfig, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d—%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
