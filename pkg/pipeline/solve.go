package pipeline

import (
	"fmt"

	"github.com/mlorenz/wayfind/pkg/graph"
	"github.com/mlorenz/wayfind/pkg/route"
	"github.com/mlorenz/wayfind/pkg/scenario"
)

// Solve computes a route through g using the configured algorithm.
func Solve(g *graph.AdjacencyList[string, float64], opts Options) (route.Result[string], error) {
	if !opts.ShouldSolve() {
		return route.Result[string]{}, fmt.Errorf("start and goal are required")
	}
	if err := opts.ValidateForSolve(); err != nil {
		return route.Result[string]{}, err
	}

	start := graph.NewVertex(opts.Start)
	goal := graph.NewVertex(opts.Goal)

	switch opts.SolveAlgorithm() {
	case scenario.AlgorithmDijkstra:
		return route.Dijkstra(g, start, goal)
	case scenario.AlgorithmBFS:
		return route.BFS(g, start, goal)
	default:
		return route.Result[string]{}, fmt.Errorf("invalid algorithm: %q", opts.Algorithm)
	}
}
