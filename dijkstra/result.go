package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metro/graph"
)

// NoPredecessor marks the start vertex and unreached vertices.
const NoPredecessor = -1

// Result is the outcome of one run. It is immutable once returned and
// safe to share between goroutines.
//
// State is stored densely, indexed by vertex. A vertex has a recorded
// distance iff its state is Frontier or Finalized; there is no sentinel
// distance value.
type Result struct {
	start      int
	dist       []float64
	pred       []int
	state      []VertexState
	visitOrder []int
}

func newResult(start, n int) *Result {
	pred := make([]int, n)
	for i := range pred {
		pred[i] = NoPredecessor
	}

	return &Result{
		start:      start,
		dist:       make([]float64, n),
		pred:       pred,
		state:      make([]VertexState, n),
		visitOrder: make([]int, 0, n),
	}
}

// record stores a (possibly improved) tentative distance and moves v to the frontier.
func (r *Result) record(v int, d float64, via int) {
	r.dist[v] = d
	r.pred[v] = via
	r.state[v] = Frontier
}

// Start returns the vertex the run started from.
func (r *Result) Start() int { return r.start }

// VertexCount returns the number of vertices covered by the result.
func (r *Result) VertexCount() int { return len(r.dist) }

// Distance returns the recorded distance of v and whether one exists.
// Out-of-range vertices report (0, false).
func (r *Result) Distance(v int) (float64, bool) {
	if !r.has(v) || r.state[v] == Unvisited {
		return 0, false
	}

	return r.dist[v], true
}

// Predecessor returns the vertex that last relaxed v. The start vertex and
// unreached vertices report (NoPredecessor, false).
func (r *Result) Predecessor(v int) (int, bool) {
	if !r.has(v) || r.pred[v] == NoPredecessor {
		return NoPredecessor, false
	}

	return r.pred[v], true
}

// State returns the lifecycle state of v at the end of the run.
// Out-of-range vertices report Unvisited.
func (r *Result) State(v int) VertexState {
	if !r.has(v) {
		return Unvisited
	}

	return r.state[v]
}

// Reachable reports whether v has a recorded distance.
func (r *Result) Reachable(v int) bool {
	_, ok := r.Distance(v)

	return ok
}

// VisitOrder returns a copy of the finalization sequence.
func (r *Result) VisitOrder() []int {
	out := make([]int, len(r.visitOrder))
	copy(out, r.visitOrder)

	return out
}

// Distances exports every distance densely; unreached vertices are +Inf.
func (r *Result) Distances() []float64 {
	out := make([]float64, len(r.dist))
	for v := range out {
		if r.state[v] == Unvisited {
			out[v] = math.Inf(1)
			continue
		}
		out[v] = r.dist[v]
	}

	return out
}

// Predecessors exports every predecessor densely; NoPredecessor where absent.
func (r *Result) Predecessors() []int {
	out := make([]int, len(r.pred))
	copy(out, r.pred)

	return out
}

// PathTo is shorthand for ReconstructPath(r, target).
func (r *Result) PathTo(target int) ([]int, error) {
	return ReconstructPath(r, target)
}

func (r *Result) has(v int) bool { return v >= 0 && v < len(r.dist) }

// ReconstructPath walks predecessor links from target back to the start and
// returns the vertices from start to target inclusive.
//
// Errors:
//   - graph.ErrOutOfBounds if target is not a vertex of the searched graph.
//   - ErrUnreachable if target has no recorded distance.
//
// Complexity: O(len(path)).
func ReconstructPath(res *Result, target int) ([]int, error) {
	if res == nil {
		return nil, fmt.Errorf("dijkstra: nil result: %w", ErrUnreachable)
	}
	if !res.has(target) {
		return nil, fmt.Errorf("dijkstra: target %d not in [0,%d): %w", target, len(res.dist), graph.ErrOutOfBounds)
	}
	if res.state[target] == Unvisited {
		return nil, fmt.Errorf("dijkstra: %d from %d: %w", target, res.start, ErrUnreachable)
	}

	// Predecessor chains are acyclic and at most V long.
	var rev []int
	for v := target; v != NoPredecessor; v = res.pred[v] {
		rev = append(rev, v)
		if len(rev) > len(res.dist) {
			return nil, fmt.Errorf("dijkstra: predecessor cycle at %d: %w", v, ErrUnreachable)
		}
	}

	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path, nil
}
