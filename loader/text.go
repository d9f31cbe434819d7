package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/metro/graph"
)

// commentMark starts a comment that runs to the end of the line.
const commentMark = "#"

// ParseText reads the text edge-list format from r.
//
// Implementation:
//   - Stage 1: skip blank/comment lines; the first significant line must be a
//     single non-negative integer (the vertex count).
//   - Stage 2: every following significant line must hold exactly three
//     fields "u v w"; two fields yield ErrMissingWeight.
//   - Stage 3: each edge goes through graph.AddEdge, so index and weight
//     validation is the graph's.
//
// Complexity: O(input size).
func ParseText(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	var (
		g      *graph.Graph
		lineNo int
		err    error
	)
	for sc.Scan() {
		lineNo++
		fields := significantFields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if g == nil {
			if g, err = parseHeader(fields); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}

		if err = parseEdge(g, fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if g == nil {
		return nil, ErrEmptyInput
	}

	return g, nil
}

// ParseTextString is ParseText over an in-memory string.
func ParseTextString(s string) (*graph.Graph, error) {
	return ParseText(strings.NewReader(s))
}

func significantFields(line string) []string {
	if i := strings.Index(line, commentMark); i >= 0 {
		line = line[:i]
	}

	return strings.Fields(line)
}

func parseHeader(fields []string) (*graph.Graph, error) {
	if len(fields) != 1 {
		return nil, fmt.Errorf("vertex count line has %d fields: %w", len(fields), ErrSyntax)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("vertex count %q: %w", fields[0], ErrSyntax)
	}

	return graph.New(n)
}

func parseEdge(g *graph.Graph, fields []string) error {
	switch {
	case len(fields) == 2:
		return fmt.Errorf("edge %s-%s: %w", fields[0], fields[1], ErrMissingWeight)
	case len(fields) != 3:
		return fmt.Errorf("edge line has %d fields, want 3: %w", len(fields), ErrSyntax)
	}

	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("endpoint %q: %w", fields[0], ErrSyntax)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("endpoint %q: %w", fields[1], ErrSyntax)
	}
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return fmt.Errorf("weight %q: %w", fields[2], ErrSyntax)
	}

	return g.AddEdge(u, v, w)
}

// WriteText serializes g in the text edge-list format, one line per
// inserted edge in insertion order. ParseText(WriteText(g)) rebuilds an
// identical graph.
func WriteText(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", g.VertexCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d %s\n", e.U, e.V, strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}

	return bw.Flush()
}
