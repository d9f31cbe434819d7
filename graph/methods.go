// SPDX-License-Identifier: MIT
// File: methods.go
// Role: mutation (AddEdge) and queries (Adjacent, Degree, Edges, counts).
// Concurrency:
//   - AddEdge holds the write lock; every query holds the read lock.
//   - Returned slices are copies; callers may keep or modify them freely.

package graph

import (
	"fmt"
	"math"
	"strings"
)

// AddEdge inserts the undirected edge {u, v} with weight w.
//
// Implementation:
//   - Stage 1: Validate both endpoints (ErrOutOfBounds) and the weight
//     (ErrInvalidWeight). Nothing is mutated when validation fails.
//   - Stage 2: Append (v, w) to adjacency[u] and, unless u == v, (u, w) to adjacency[v].
//   - Stage 3: Increment the edge count by exactly one.
//
// Self-loops appear once in the owning vertex's list. Parallel edges are
// kept as separate records.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if !g.inBounds(u) {
		return fmt.Errorf("AddEdge(%d, %d): u=%d not in [0,%d): %w", u, v, u, g.vertexCount, ErrOutOfBounds)
	}
	if !g.inBounds(v) {
		return fmt.Errorf("AddEdge(%d, %d): v=%d not in [0,%d): %w", u, v, v, g.vertexCount, ErrOutOfBounds)
	}
	if w < 0 || math.IsNaN(w) {
		return fmt.Errorf("AddEdge(%d, %d): w=%g: %w", u, v, w, ErrInvalidWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[u] = append(g.adjacency[u], Edge{To: v, Weight: w})
	if u != v {
		g.adjacency[v] = append(g.adjacency[v], Edge{To: u, Weight: w})
	}
	g.pairs = append(g.pairs, Pair{U: u, V: v, Weight: w})
	g.edgeCount++

	return nil
}

// Adjacent returns the (neighbor, weight) records of u in insertion order.
//
// An isolated vertex yields an empty, non-nil slice. ErrOutOfBounds is
// returned for an invalid index.
//
// Complexity: O(deg(u)) for the copy.
func (g *Graph) Adjacent(u int) ([]Edge, error) {
	if !g.inBounds(u) {
		return nil, fmt.Errorf("Adjacent(%d): not in [0,%d): %w", u, g.vertexCount, ErrOutOfBounds)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.adjacency[u]))
	copy(out, g.adjacency[u])

	return out, nil
}

// VisitAdjacent calls fn for each adjacency record of u under a single read
// lock, without copying. fn must not call AddEdge on the same graph.
// Iteration stops early when fn returns false.
func (g *Graph) VisitAdjacent(u int, fn func(e Edge) bool) error {
	if !g.inBounds(u) {
		return fmt.Errorf("VisitAdjacent(%d): not in [0,%d): %w", u, g.vertexCount, ErrOutOfBounds)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.adjacency[u] {
		if !fn(e) {
			break
		}
	}

	return nil
}

// Degree returns the number of adjacency records of u.
// A self-loop counts once.
func (g *Graph) Degree(u int) (int, error) {
	if !g.inBounds(u) {
		return 0, fmt.Errorf("Degree(%d): not in [0,%d): %w", u, g.vertexCount, ErrOutOfBounds)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[u]), nil
}

// Edges returns every inserted edge once, in insertion order.
func (g *Graph) Edges() []Pair {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Pair, len(g.pairs))
	copy(out, g.pairs)

	return out
}

// VertexCount returns the fixed number of vertices.
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeCount returns the number of AddEdge calls that succeeded.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Has reports whether u is a valid vertex index.
func (g *Graph) Has(u int) bool { return g.inBounds(u) }

// Clone returns an independent deep copy of g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		vertexCount: g.vertexCount,
		edgeCount:   g.edgeCount,
		adjacency:   make([][]Edge, g.vertexCount),
		pairs:       make([]Pair, len(g.pairs)),
	}
	for u, list := range g.adjacency {
		if len(list) == 0 {
			continue
		}
		c.adjacency[u] = make([]Edge, len(list))
		copy(c.adjacency[u], list)
	}
	copy(c.pairs, g.pairs)

	return c
}

// String renders a header line followed by one line per vertex that has at
// least one adjacency record:
//
//	Graph with 3 vertices and 2 edges:
//	0: [1(1)]
//	1: [0(1) 2(2.5)]
//	2: [1(2.5)]
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Graph with %d vertices and %d edges:", g.vertexCount, g.edgeCount)
	for u, list := range g.adjacency {
		if len(list) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n%d: [", u)
		for i, e := range list {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d(%g)", e.To, e.Weight)
		}
		sb.WriteByte(']')
	}

	return sb.String()
}

// inBounds does not lock: vertexCount is immutable after New.
func (g *Graph) inBounds(u int) bool {
	return u >= 0 && u < g.vertexCount
}
