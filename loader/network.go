package loader

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/metro/graph"
)

// Network is a graph plus optional human-readable station names.
// Without names, vertices are referred to by their decimal index.
type Network struct {
	Graph *graph.Graph

	names []string
	index map[string]int
}

// NewNetwork wraps g. names may be nil; otherwise it must hold exactly one
// unique entry per vertex.
func NewNetwork(g *graph.Graph, names []string) (*Network, error) {
	n := &Network{Graph: g}
	if len(names) == 0 {
		return n, nil
	}
	if len(names) != g.VertexCount() {
		return nil, fmt.Errorf("%d names for %d vertices: %w", len(names), g.VertexCount(), ErrVertexMismatch)
	}

	n.names = make([]string, len(names))
	copy(n.names, names)
	n.index = make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("station %d has an empty name: %w", i, ErrSyntax)
		}
		if prev, dup := n.index[name]; dup {
			return nil, fmt.Errorf("station %q declared at %d and %d: %w", name, prev, i, ErrSyntax)
		}
		n.index[name] = i
	}

	return n, nil
}

// Named reports whether stations carry names.
func (n *Network) Named() bool { return len(n.names) > 0 }

// Name returns the station name of v, or its decimal index when unnamed.
func (n *Network) Name(v int) string {
	if v >= 0 && v < len(n.names) {
		return n.names[v]
	}

	return strconv.Itoa(v)
}

// Names returns a copy of the station names (nil when unnamed).
func (n *Network) Names() []string {
	if len(n.names) == 0 {
		return nil
	}
	out := make([]string, len(n.names))
	copy(out, n.names)

	return out
}

// Index resolves a station reference: a declared name first, then a decimal
// index. The result is bounds-checked against the graph.
func (n *Network) Index(ref string) (int, error) {
	if v, ok := n.index[ref]; ok {
		return v, nil
	}
	v, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", ref, ErrUnknownStation)
	}
	if !n.Graph.Has(v) {
		return 0, fmt.Errorf("%d not in [0,%d): %w", v, n.Graph.VertexCount(), graph.ErrOutOfBounds)
	}

	return v, nil
}
