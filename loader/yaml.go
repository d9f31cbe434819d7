package loader

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metro/graph"
)

// document is the YAML network layout.
type document struct {
	Vertices *int      `yaml:"vertices,omitempty"`
	Stations []string  `yaml:"stations,omitempty"`
	Edges    []edgeDoc `yaml:"edges"`
}

// edgeDoc is one YAML edge; line is filled from the node for error messages.
type edgeDoc struct {
	From   ref      `yaml:"from"`
	To     ref      `yaml:"to"`
	Weight *float64 `yaml:"weight"`

	line int
}

// edgeKeys lists the keys an edge mapping may carry.
var edgeKeys = map[string]bool{"from": true, "to": true, "weight": true}

// UnmarshalYAML records the source line of the edge mapping. Keys are checked
// here because n.Decode does not inherit the decoder's KnownFields setting.
func (e *edgeDoc) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if k := n.Content[i]; !edgeKeys[k.Value] {
				return fmt.Errorf("line %d: unknown edge key %q: %w", k.Line, k.Value, ErrSyntax)
			}
		}
	}

	type plain edgeDoc
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*e = edgeDoc(p)
	e.line = n.Line

	return nil
}

// ref is a station reference: a name or a decimal index.
type ref string

// UnmarshalYAML accepts any scalar, so both `from: 3` and `from: Central` work.
func (r *ref) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: station reference must be a scalar: %w", n.Line, ErrSyntax)
	}
	*r = ref(n.Value)

	return nil
}

// ParseYAML reads the YAML network format from r. Unknown keys are rejected.
func ParseYAML(r io.Reader) (*Network, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		if errors.Is(err, ErrSyntax) {
			return nil, err
		}

		return nil, fmt.Errorf("%v: %w", err, ErrSyntax)
	}

	n, err := vertexCount(doc)
	if err != nil {
		return nil, err
	}
	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	net, err := NewNetwork(g, doc.Stations)
	if err != nil {
		return nil, err
	}

	for _, e := range doc.Edges {
		if e.Weight == nil {
			return nil, fmt.Errorf("line %d: edge %s-%s: %w", e.line, e.From, e.To, ErrMissingWeight)
		}
		u, err := net.Index(string(e.From))
		if err != nil {
			return nil, fmt.Errorf("line %d: from: %w", e.line, err)
		}
		v, err := net.Index(string(e.To))
		if err != nil {
			return nil, fmt.Errorf("line %d: to: %w", e.line, err)
		}
		if err = g.AddEdge(u, v, *e.Weight); err != nil {
			return nil, fmt.Errorf("line %d: %w", e.line, err)
		}
	}

	return net, nil
}

// ParseYAMLString is ParseYAML over an in-memory string.
func ParseYAMLString(s string) (*Network, error) {
	return ParseYAML(strings.NewReader(s))
}

func vertexCount(doc document) (int, error) {
	switch {
	case doc.Vertices == nil && len(doc.Stations) == 0:
		return 0, fmt.Errorf("neither vertices nor stations given: %w", ErrEmptyInput)
	case doc.Vertices == nil:
		return len(doc.Stations), nil
	case len(doc.Stations) > 0 && *doc.Vertices != len(doc.Stations):
		return 0, fmt.Errorf("vertices=%d, stations=%d: %w", *doc.Vertices, len(doc.Stations), ErrVertexMismatch)
	default:
		return *doc.Vertices, nil
	}
}
