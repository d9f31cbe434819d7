// SPDX-License-Identifier: MIT
// Package: metro/builder
//
// impl_cycle.go — Cycle(n): a ring line 0—1—…—(n-1)—0.

package builder

import "github.com/katalvlaran/metro/graph"

const (
	methodCycle  = "Cycle"
	minCycleSize = 3
)

// Cycle returns a Constructor building the ring C_n over vertices 0..n-1.
// Edges are emitted {i, i+1} for i asc, then the closing edge {n-1, 0}.
//
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := requireVertices(methodCycle, g, n, minCycleSize); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
