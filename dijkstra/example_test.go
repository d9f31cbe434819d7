// Package dijkstra_test provides examples demonstrating the shortest-path search.
// Each example is runnable via "go test -run Example".
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/graph"
)

// ExampleDijkstra demonstrates distances on a small triangle network.
func ExampleDijkstra() {
	// 0—1 (1), 1—2 (2), 0—2 (5)
	g := graph.MustNew(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)

	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Distances())
	fmt.Println(res.VisitOrder())
	// Output:
	// [0 1 3]
	// [0 1 2]
}

// ExampleReconstructPath shows path recovery and the unreachable error.
func ExampleReconstructPath() {
	g := graph.MustNew(4)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(1, 2, 4)
	_ = g.AddEdge(0, 2, 9)

	res, _ := dijkstra.Dijkstra(g, 0)

	path, _ := dijkstra.ReconstructPath(res, 2)
	fmt.Println(path)

	_, err := dijkstra.ReconstructPath(res, 3)
	fmt.Println(err)
	// Output:
	// [0 1 2]
	// dijkstra: 3 from 0: dijkstra: target is unreachable
}

// ExampleShortestPath stops as soon as the target is finalized.
func ExampleShortestPath() {
	g := graph.MustNew(5)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 3, 2)
	_ = g.AddEdge(0, 4, 1)
	_ = g.AddEdge(4, 3, 10)

	path, total, err := dijkstra.ShortestPath(g, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%v cost=%g\n", path, total)
	// Output: [0 1 2 3] cost=6
}
