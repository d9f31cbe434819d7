// Package dijkstra computes single-source shortest paths over a metro
// graph.Graph with non-negative edge weights.
//
// Overview:
//
//   - A Search is bound to one graph and a set of Options. Each Run(start)
//     owns its own priority queue, distance and predecessor state, so one
//     Search may serve many concurrent runs while the graph is not mutated.
//   - Every vertex moves through Unvisited → Frontier → Finalized. The start
//     vertex is the only vertex initially queued, at priority 0.
//   - The frontier is a pqueue.Queue with FIFO tie-break. Decrease-key is
//     done lazily: an improved distance re-inserts the vertex and stale
//     entries of already finalized vertices are discarded when popped.
//
// Determinism:
//
//   - Adjacency is scanned in insertion order and equal priorities pop in
//     insertion order, so visit order, distances and predecessors depend
//     only on the graph's edge insertion order. Two runs on an unmodified
//     graph produce identical results.
//   - Relaxation uses strict "<": an equal-cost alternative never replaces
//     the predecessor recorded first.
//
// Absent distances:
//
//   - Unreached vertices have no recorded distance. Result.Distance reports
//     this through its boolean; Result.Distances exports them as +Inf.
//
// Options (functional, see DefaultOptions):
//
//   - WithMaxDistance(d):      candidates with total cost > d are not recorded.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable.
//   - WithTarget(v):           stop as soon as v is finalized.
//
// Complexity:
//
//   - Time:  O((V + E) log E); each edge relaxation may push one entry.
//   - Space: O(V + E) for the dense state slices and the lazy queue.
//
// Errors (sentinel):
//
//   - ErrNilGraph          nil graph passed to NewSearch.
//   - ErrBadMaxDistance    negative or NaN MaxDistance.
//   - ErrBadInfThreshold   non-positive or NaN InfEdgeThreshold.
//   - ErrUnreachable       ReconstructPath to a vertex without a recorded distance.
//   - graph.ErrOutOfBounds start, target or path vertex outside the graph.
package dijkstra
