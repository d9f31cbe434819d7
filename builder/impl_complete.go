// SPDX-License-Identifier: MIT
// Package: metro/builder
//
// impl_complete.go — Complete(n): K_n over vertices 0..n-1.
//
// Determinism: unordered pairs {i, j} with i < j, i asc then j asc.

package builder

import "github.com/katalvlaran/metro/graph"

const (
	methodComplete  = "Complete"
	minCompleteSize = 1
)

// Complete returns a Constructor building the complete simple graph K_n.
//
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := requireVertices(methodComplete, g, n, minCompleteSize); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
