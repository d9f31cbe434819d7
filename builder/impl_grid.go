// SPDX-License-Identifier: MIT
// Package: metro/builder
//
// impl_grid.go — Grid(rows, cols): 4-neighborhood street grid.
//
// Canonical model:
//   - Vertex (r, c) has index r*cols + c (row-major).
//   - For each cell in row-major order emit Right then Bottom if present.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metro/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridIndex maps a (row, col) coordinate to its dense vertex index.
func GridIndex(cols, r, c int) int { return r*cols + c }

// Grid returns a Constructor building a rows×cols orthogonal grid over
// vertices 0..rows*cols-1.
//
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if rows > math.MaxInt/cols {
			return fmt.Errorf("%s: rows=%d, cols=%d overflows the vertex count: %w",
				methodGrid, rows, cols, ErrTooFewVertices)
		}
		if err := requireVertices(methodGrid, g, rows*cols, minGridDim); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridIndex(cols, r, c)
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, u, GridIndex(cols, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, u, GridIndex(cols, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
