// Package report renders dijkstra results for people (aligned text) and for
// tools (YAML). It never computes anything itself.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metro/dijkstra"
)

// Namer maps a vertex index to a display name. *loader.Network implements it.
type Namer interface {
	Name(v int) string
}

// indexNamer renders vertices as their decimal index.
type indexNamer struct{}

func (indexNamer) Name(v int) string { return strconv.Itoa(v) }

func namerOrIndex(n Namer) Namer {
	if n == nil {
		return indexNamer{}
	}

	return n
}

// FormatWeight prints weights without trailing zeros ("2", "7.5").
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// WriteText prints one row per vertex (name, distance, predecessor) followed
// by the visit order. Unreached vertices show "unreachable".
func WriteText(w io.Writer, res *dijkstra.Result, names Namer) error {
	names = namerOrIndex(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "from %s\n", names.Name(res.Start()))
	fmt.Fprintln(tw, "STATION\tDISTANCE\tVIA")
	for v := 0; v < res.VertexCount(); v++ {
		d, ok := res.Distance(v)
		if !ok {
			fmt.Fprintf(tw, "%s\tunreachable\t-\n", names.Name(v))
			continue
		}
		via := "-"
		if p, ok := res.Predecessor(v); ok {
			via = names.Name(p)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", names.Name(v), FormatWeight(d), via)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	order := res.VisitOrder()
	labels := make([]string, len(order))
	for i, v := range order {
		labels[i] = names.Name(v)
	}
	_, err := fmt.Fprintf(w, "visit order: %s\n", strings.Join(labels, " "))

	return err
}

// WritePath prints "a -> b -> c (total 7.5)" for the route to target.
// It returns dijkstra.ErrUnreachable when no route exists.
func WritePath(w io.Writer, res *dijkstra.Result, target int, names Namer) error {
	names = namerOrIndex(names)

	path, err := dijkstra.ReconstructPath(res, target)
	if err != nil {
		return err
	}
	labels := make([]string, len(path))
	for i, v := range path {
		labels[i] = names.Name(v)
	}
	d, _ := res.Distance(target)
	_, err = fmt.Fprintf(w, "%s (total %s)\n", strings.Join(labels, " -> "), FormatWeight(d))

	return err
}

// Document is the YAML shape of a result.
type Document struct {
	Start      string        `yaml:"start"`
	VisitOrder []string      `yaml:"visit_order"`
	Stations   []StationInfo `yaml:"stations"`
}

// StationInfo is one vertex in a Document. Distance and Via are omitted for
// unreached vertices and Via for the start.
type StationInfo struct {
	Name     string   `yaml:"name"`
	State    string   `yaml:"state"`
	Distance *float64 `yaml:"distance,omitempty"`
	Via      string   `yaml:"via,omitempty"`
}

// NewDocument converts res into its YAML shape.
func NewDocument(res *dijkstra.Result, names Namer) Document {
	names = namerOrIndex(names)

	doc := Document{
		Start:    names.Name(res.Start()),
		Stations: make([]StationInfo, res.VertexCount()),
	}
	for _, v := range res.VisitOrder() {
		doc.VisitOrder = append(doc.VisitOrder, names.Name(v))
	}
	for v := range doc.Stations {
		info := StationInfo{Name: names.Name(v), State: res.State(v).String()}
		if d, ok := res.Distance(v); ok {
			info.Distance = &d
		}
		if p, ok := res.Predecessor(v); ok {
			info.Via = names.Name(p)
		}
		doc.Stations[v] = info
	}

	return doc
}

// WriteYAML encodes NewDocument(res, names) to w.
func WriteYAML(w io.Writer, res *dijkstra.Result, names Namer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(res, names)); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}
