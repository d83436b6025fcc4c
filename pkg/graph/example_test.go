package graph_test

import (
	"fmt"

	"github.com/mlorenz/wayfind/pkg/graph"
)

func ExampleAdjacencyList_Mermaid() {
	g := graph.New[int, int]()
	g.AddEdgeUndirected(graph.NewVertex(1), graph.NewVertex(2), 5)
	g.AddEdgeDirected(graph.NewVertex(2), graph.NewVertex(3), 7)

	fmt.Println(g.Mermaid())
	// Output:
	// flowchart LR
	//     1 --- 2
	//     2 --- 1
	//     2 --> 3
}

func ExampleAdjacencyList_ToggleVertex() {
	g := graph.New[string, int]()
	a, b := graph.NewVertex("a"), graph.NewVertex("b")
	g.AddEdgeUndirected(a, b, 1)

	g.ToggleVertex(a, nil) // remove
	fmt.Println("present after 1st toggle:", g.Contains(a))

	g.ToggleVertex(a, nil) // re-insert, edge-less
	fmt.Println("present after 2nd toggle:", g.Contains(a))
	// Output:
	// present after 1st toggle: false
	// present after 2nd toggle: true
}

func ExampleAdjacencyList_Neighbors() {
	g := graph.New[string, float64]()
	g.AddEdgeUndirected(graph.NewVertex("dock"), graph.NewVertex("market"), 2.5)

	edges, ok := g.Neighbors(graph.NewVertex("dock"))
	fmt.Println(ok, edges[graph.NewVertex("market")])

	_, ok = g.Neighbors(graph.NewVertex("lighthouse"))
	fmt.Println(ok)
	// Output:
	// true 2.5
	// false
}
