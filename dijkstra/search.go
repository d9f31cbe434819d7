package dijkstra

import (
	"context"
	"fmt"

	"github.com/katalvlaran/metro/graph"
	"github.com/katalvlaran/metro/pqueue"
)

// Search runs shortest-path queries against one graph.
// It holds no per-run state and is safe for concurrent use.
type Search struct {
	g       *graph.Graph
	options Options
}

// NewSearch binds a Search to g and validates opts.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. MaxDistance ≥ 0 (ErrBadMaxDistance).
//  3. InfEdgeThreshold > 0 (ErrBadInfThreshold).
//  4. Target is NoTarget or a vertex of g (graph.ErrOutOfBounds).
func NewSearch(g *graph.Graph, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Target != NoTarget && !g.Has(cfg.Target) {
		return nil, fmt.Errorf("dijkstra: target %d not in [0,%d): %w", cfg.Target, g.VertexCount(), graph.ErrOutOfBounds)
	}

	return &Search{g: g, options: cfg}, nil
}

// Options returns the resolved configuration.
func (s *Search) Options() Options { return s.options }

// Run computes shortest distances from start. See RunContext.
func (s *Search) Run(start int) (*Result, error) {
	return s.RunContext(context.Background(), start)
}

// RunContext computes shortest distances from start, checking ctx between
// queue extractions. A cancelled run returns ctx's error wrapped and no result.
//
// Returns graph.ErrOutOfBounds if start is not a vertex of the graph.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func (s *Search) RunContext(ctx context.Context, start int) (*Result, error) {
	if !s.g.Has(start) {
		return nil, fmt.Errorf("dijkstra: start %d not in [0,%d): %w", start, s.g.VertexCount(), graph.ErrOutOfBounds)
	}

	r := newRunner(s.g, s.options, start)
	if err := r.process(ctx); err != nil {
		return nil, err
	}

	return r.res, nil
}

// Dijkstra is a one-shot helper: NewSearch(g, opts...) followed by Run(start).
func Dijkstra(g *graph.Graph, start int, opts ...Option) (*Result, error) {
	s, err := NewSearch(g, opts...)
	if err != nil {
		return nil, err
	}

	return s.Run(start)
}

// ShortestPath returns the cheapest vertex sequence from → to and its total
// weight. The search stops as soon as to is finalized.
func ShortestPath(g *graph.Graph, from, to int, opts ...Option) ([]int, float64, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	s, err := NewSearch(g, append(all, WithTarget(to))...)
	if err != nil {
		return nil, 0, err
	}
	res, err := s.Run(from)
	if err != nil {
		return nil, 0, err
	}
	path, err := ReconstructPath(res, to)
	if err != nil {
		return nil, 0, err
	}
	d, _ := res.Distance(to)

	return path, d, nil
}

// runner holds the mutable state for a single run.
type runner struct {
	g       *graph.Graph                // read-only within the run
	options Options                     // thresholds and target
	res     *Result                     // distances, predecessors, states, visit order
	pq      *pqueue.Queue[float64, int] // lazy frontier: (tentative distance, vertex)
}

// newRunner sets every vertex Unvisited, records distance 0 for start and
// queues it alone at priority 0.
func newRunner(g *graph.Graph, opts Options, start int) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: opts,
		res:     newResult(start, n),
		pq:      pqueue.New[float64, int](n),
	}
	r.res.record(start, 0, NoPredecessor)
	r.pq.Insert(0, start)

	return r
}

// process is the main loop. It terminates when the queue is empty or the
// target is finalized.
func (r *runner) process(ctx context.Context) error {
	for !r.pq.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: run from %d interrupted: %w", r.res.start, err)
		}

		_, u, err := r.pq.ExtractMin()
		if err != nil {
			// Unreachable while IsEmpty() guards the loop.
			return fmt.Errorf("dijkstra: frontier: %w", err)
		}

		// Stale entry of a vertex finalized through a cheaper duplicate.
		if r.res.state[u] == Finalized {
			continue
		}

		r.res.state[u] = Finalized
		r.res.visitOrder = append(r.res.visitOrder, u)

		if u == r.options.Target {
			return nil
		}

		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax offers every edge of the finalized vertex u to its neighbor.
func (r *runner) relax(u int) error {
	du := r.res.dist[u]

	return r.g.VisitAdjacent(u, func(e graph.Edge) bool {
		v := e.To
		if r.res.state[v] == Finalized {
			return true
		}
		if e.Weight >= r.options.InfEdgeThreshold {
			return true
		}

		cand := du + e.Weight
		if cand > r.options.MaxDistance {
			return true
		}
		if r.res.state[v] == Frontier && cand >= r.res.dist[v] {
			return true
		}

		r.res.record(v, cand, u)
		r.pq.Insert(cand, v)

		return true
	})
}
