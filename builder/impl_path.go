// SPDX-License-Identifier: MIT
// Package: metro/builder
//
// impl_path.go — Path(n): a simple line 0—1—…—(n-1).
//
// Determinism: edges are emitted for i asc as {i, i+1}.

package builder

import "github.com/katalvlaran/metro/graph"

const (
	methodPath  = "Path"
	minPathSize = 2
)

// Path returns a Constructor linking vertices 0..n-1 into a simple path.
// n must be ≥ 2 and fit inside the graph.
//
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := requireVertices(methodPath, g, n, minPathSize); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
