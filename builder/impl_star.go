// SPDX-License-Identifier: MIT
// Package: metro/builder
//
// impl_star.go — Star(n): hub vertex 0 with spokes to 1..n-1.

package builder

import "github.com/katalvlaran/metro/graph"

const (
	methodStar  = "Star"
	minStarSize = 2
)

// Star returns a Constructor connecting hub 0 to every leaf 1..n-1 (leaf asc).
//
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := requireVertices(methodStar, g, n, minStarSize); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := addEdge(methodStar, g, cfg, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
