package report_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/graph"
	"github.com/katalvlaran/metro/loader"
	"github.com/katalvlaran/metro/report"
)

// cityResult runs from Central over a small named network with one isolated depot.
func cityResult(t *testing.T) (*dijkstra.Result, *loader.Network) {
	t.Helper()
	net, err := loader.ParseYAMLString(`
stations: [Central, Market, Harbor, Depot]
edges:
  - {from: Central, to: Market, weight: 2}
  - {from: Market, to: Harbor, weight: 3.5}
  - {from: Central, to: Harbor, weight: 9}
`)
	require.NoError(t, err)
	res, err := dijkstra.Dijkstra(net.Graph, 0)
	require.NoError(t, err)

	return res, net
}

func TestWriteText(t *testing.T) {
	res, net := cityResult(t)

	var sb strings.Builder
	require.NoError(t, report.WriteText(&sb, res, net))

	want := "from Central\n" +
		"STATION  DISTANCE     VIA\n" +
		"Central  0            -\n" +
		"Market   2            Central\n" +
		"Harbor   5.5          Market\n" +
		"Depot    unreachable  -\n" +
		"visit order: Central Market Harbor\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteText_IndexNames(t *testing.T) {
	g := graph.MustNew(2)
	require.NoError(t, g.AddEdge(0, 1, 4))
	res, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, report.WriteText(&sb, res, nil))
	assert.Contains(t, sb.String(), "from 1\n")
	assert.Contains(t, sb.String(), "visit order: 1 0\n")
}

func TestWritePath(t *testing.T) {
	res, net := cityResult(t)

	var sb strings.Builder
	require.NoError(t, report.WritePath(&sb, res, 2, net))
	assert.Equal(t, "Central -> Market -> Harbor (total 5.5)\n", sb.String())

	err := report.WritePath(&sb, res, 3, net)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestWriteYAML(t *testing.T) {
	res, net := cityResult(t)

	var sb strings.Builder
	require.NoError(t, report.WriteYAML(&sb, res, net))

	var doc report.Document
	require.NoError(t, yaml.Unmarshal([]byte(sb.String()), &doc))
	assert.Equal(t, "Central", doc.Start)
	assert.Equal(t, []string{"Central", "Market", "Harbor"}, doc.VisitOrder)
	require.Len(t, doc.Stations, 4)

	harbor := doc.Stations[2]
	require.NotNil(t, harbor.Distance)
	assert.Equal(t, 5.5, *harbor.Distance)
	assert.Equal(t, "Market", harbor.Via)
	assert.Equal(t, "finalized", harbor.State)

	depot := doc.Stations[3]
	assert.Nil(t, depot.Distance)
	assert.Empty(t, depot.Via)
	assert.Equal(t, "unvisited", depot.State)

	assert.Empty(t, doc.Stations[0].Via)
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "2", report.FormatWeight(2))
	assert.Equal(t, "7.5", report.FormatWeight(7.5))
	assert.Equal(t, "+Inf", report.FormatWeight(math.Inf(1)))
}
