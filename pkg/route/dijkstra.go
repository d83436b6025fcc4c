package route

import (
	"cmp"
	"container/heap"
	"fmt"
	"slices"

	"github.com/mlorenz/wayfind/pkg/graph"
)

// Dijkstra computes the minimum-cost path from start to goal over
// non-negative float64 edge weights.
//
// The search uses a min-heap with the lazy decrease-key strategy: improved
// distances push duplicate heap entries, and stale entries are skipped on
// pop. Time O((V+E) log V), space O(V+E).
//
// Validation order: nil graph, then missing endpoints. Negative weights are
// reported as they are encountered during relaxation, naming the offending
// edge. An unreachable goal yields ErrNoPath.
func Dijkstra[V cmp.Ordered](g *graph.AdjacencyList[V, float64], start, goal graph.Vertex[V]) (Result[V], error) {
	if g == nil {
		return Result[V]{}, ErrNilGraph
	}
	if !g.Contains(start) {
		return Result[V]{}, fmt.Errorf("%w: start %v", ErrVertexNotFound, start)
	}
	if !g.Contains(goal) {
		return Result[V]{}, fmt.Errorf("%w: goal %v", ErrVertexNotFound, goal)
	}

	dist := map[graph.Vertex[V]]float64{start: 0}
	prev := make(map[graph.Vertex[V]]graph.Vertex[V])
	settled := make(map[graph.Vertex[V]]bool)

	pq := &minHeap[V]{{vertex: start, dist: 0}}
	heap.Init(pq)

	var settledCount int
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(heapItem[V])
		if settled[cur.vertex] {
			continue // stale duplicate
		}
		settled[cur.vertex] = true
		settledCount++

		if cur.vertex == goal {
			return Result[V]{
				Path:    rebuild(prev, start, goal),
				Cost:    cur.dist,
				Settled: settledCount,
			}, nil
		}

		edges, _ := g.Neighbors(cur.vertex)
		for _, n := range sortedVertices(edges) {
			w := edges[n]
			if w < 0 {
				return Result[V]{}, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, cur.vertex, n, w)
			}
			if settled[n] {
				continue
			}
			alt := cur.dist + w
			if d, seen := dist[n]; !seen || alt < d {
				dist[n] = alt
				prev[n] = cur.vertex
				heap.Push(pq, heapItem[V]{vertex: n, dist: alt})
			}
		}
	}

	return Result[V]{}, fmt.Errorf("%w: %v → %v", ErrNoPath, start, goal)
}

// heapItem pairs a vertex with its tentative distance from the source.
type heapItem[V cmp.Ordered] struct {
	vertex graph.Vertex[V]
	dist   float64
}

// minHeap is a distance-ordered heap of pending vertices; ties break on
// label order so runs are reproducible.
type minHeap[V cmp.Ordered] []heapItem[V]

func (h minHeap[V]) Len() int { return len(h) }

func (h minHeap[V]) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].vertex.Compare(h[j].vertex) < 0
}

func (h minHeap[V]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *minHeap[V]) Push(x any) { *h = append(*h, x.(heapItem[V])) }

func (h *minHeap[V]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// sortedVertices returns the keys of an edge set in ascending label order.
func sortedVertices[V cmp.Ordered, E any](edges graph.EdgeSet[V, E]) []graph.Vertex[V] {
	ks := make([]graph.Vertex[V], 0, len(edges))
	for v := range edges {
		ks = append(ks, v)
	}
	slices.SortFunc(ks, graph.Vertex[V].Compare)
	return ks
}
