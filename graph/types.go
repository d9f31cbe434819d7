// SPDX-License-Identifier: MIT
// Package graph defines the dense-index WeightedGraph used by the metro
// shortest-path search.
//
// Vertices are identified by integers in [0, VertexCount()). There is no
// separate vertex object: identity is the index. Every edge is undirected,
// carries a non-negative float64 weight and is stored symmetrically, so an
// edge {u, v, w} appears in both u's and v's adjacency lists.
//
// Errors:
//
//	ErrInvalidSize   - negative vertex count passed to New.
//	ErrOutOfBounds   - vertex index outside [0, VertexCount()).
//	ErrInvalidWeight - negative or NaN edge weight.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrInvalidSize indicates that a graph was requested with a negative vertex count.
	ErrInvalidSize = errors.New("graph: vertex count must be non-negative")

	// ErrOutOfBounds indicates a vertex index outside [0, VertexCount()).
	ErrOutOfBounds = errors.New("graph: vertex index out of bounds")

	// ErrInvalidWeight indicates a negative (or NaN) edge weight.
	ErrInvalidWeight = errors.New("graph: edge weight must be non-negative")
)

// Edge is one adjacency record: the neighbor reached from the owning vertex
// and the weight of the undirected edge between them.
type Edge struct {
	// To is the neighbor vertex index.
	To int

	// Weight is the non-negative cost of traversing the edge.
	Weight float64
}

// Pair is an undirected edge as it was inserted, used by Edges().
type Pair struct {
	U, V   int
	Weight float64
}

// Graph is an undirected, weighted graph over a fixed set of dense vertices.
//
// The vertex count is fixed at construction. The only mutation is AddEdge;
// there is no deletion. mu guards adjacency, pairs and edgeCount so that
// concurrent searches may read while no writer is active.
type Graph struct {
	mu sync.RWMutex

	vertexCount int
	edgeCount   int

	// adjacency[u] holds (neighbor, weight) records in insertion order.
	adjacency [][]Edge

	// pairs records every AddEdge call once, in insertion order.
	pairs []Pair
}

// New creates a graph with n vertices and no edges.
//
// Returns ErrInvalidSize if n < 0. A zero-vertex graph is valid; every
// index-taking method on it returns ErrOutOfBounds.
//
// Complexity: O(n).
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}

	return &Graph{
		vertexCount: n,
		adjacency:   make([][]Edge, n),
	}, nil
}

// MustNew is like New but panics on error. Intended for fixtures and examples.
func MustNew(n int) *Graph {
	g, err := New(n)
	if err != nil {
		panic(err)
	}

	return g
}
