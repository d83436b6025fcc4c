package route

import (
	"cmp"
	"errors"

	"github.com/mlorenz/wayfind/pkg/graph"
)

// Sentinel errors returned by the search functions.
var (
	// ErrNilGraph indicates a nil graph was passed.
	ErrNilGraph = errors.New("route: graph is nil")
	// ErrVertexNotFound indicates the start or goal vertex is not in the graph.
	ErrVertexNotFound = errors.New("route: vertex not found")
	// ErrNegativeWeight indicates Dijkstra encountered a negative edge weight.
	ErrNegativeWeight = errors.New("route: negative edge weight")
	// ErrNoPath indicates the goal is unreachable from the start.
	ErrNoPath = errors.New("route: no path between vertices")
)

// Result is a solved search: the path from start to goal (both inclusive),
// its total cost (edge-weight sum for [Dijkstra], hop count for [BFS]), and
// the number of vertices the search settled before finishing.
type Result[V cmp.Ordered] struct {
	Path    []graph.Vertex[V]
	Cost    float64
	Settled int
}

// Contains reports whether v lies on the solved path.
func (r Result[V]) Contains(v graph.Vertex[V]) bool {
	for _, p := range r.Path {
		if p == v {
			return true
		}
	}
	return false
}

// rebuild walks the predecessor map back from goal to start.
func rebuild[V cmp.Ordered](prev map[graph.Vertex[V]]graph.Vertex[V], start, goal graph.Vertex[V]) []graph.Vertex[V] {
	path := []graph.Vertex[V]{goal}
	for at := goal; at != start; {
		at = prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
