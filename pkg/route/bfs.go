package route

import (
	"cmp"
	"fmt"

	"github.com/mlorenz/wayfind/pkg/graph"
)

// BFS computes the minimum-hop path from start to goal, ignoring edge
// weights. The returned Cost is the hop count. Works for any weight type
// since weights are never inspected. Time and space O(V+E).
func BFS[V cmp.Ordered, E any](g *graph.AdjacencyList[V, E], start, goal graph.Vertex[V]) (Result[V], error) {
	if g == nil {
		return Result[V]{}, ErrNilGraph
	}
	if !g.Contains(start) {
		return Result[V]{}, fmt.Errorf("%w: start %v", ErrVertexNotFound, start)
	}
	if !g.Contains(goal) {
		return Result[V]{}, fmt.Errorf("%w: goal %v", ErrVertexNotFound, goal)
	}

	prev := make(map[graph.Vertex[V]]graph.Vertex[V])
	seen := map[graph.Vertex[V]]bool{start: true}
	queue := []graph.Vertex[V]{start}

	var settled int
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		settled++

		if cur == goal {
			path := rebuild(prev, start, goal)
			return Result[V]{
				Path:    path,
				Cost:    float64(len(path) - 1),
				Settled: settled,
			}, nil
		}

		edges, _ := g.Neighbors(cur)
		for _, n := range sortedVertices(edges) {
			if seen[n] {
				continue
			}
			seen[n] = true
			prev[n] = cur
			queue = append(queue, n)
		}
	}

	return Result[V]{}, fmt.Errorf("%w: %v → %v", ErrNoPath, start, goal)
}
