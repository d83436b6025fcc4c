package graph

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Vertex is an immutable vertex identity wrapping a caller-supplied label.
// Two vertices are equal iff their labels are equal, and vertices order by
// their labels, so Vertex values work directly as map keys and sort keys.
// A Vertex owns no edges; adjacency lives in the [AdjacencyList].
type Vertex[V cmp.Ordered] struct {
	Label V
}

// NewVertex wraps label into a Vertex.
func NewVertex[V cmp.Ordered](label V) Vertex[V] {
	return Vertex[V]{Label: label}
}

// Compare orders vertices by label. It reports -1, 0, or +1 and is suitable
// for [slices.SortFunc].
func (v Vertex[V]) Compare(other Vertex[V]) int {
	return cmp.Compare(v.Label, other.Label)
}

// String renders the label, making vertices printable in diagrams and logs.
func (v Vertex[V]) String() string {
	return fmt.Sprint(v.Label)
}

// EdgeSet is a vertex's outgoing edges: neighbor vertex → edge weight.
type EdgeSet[V cmp.Ordered, E any] map[Vertex[V]]E

// AdjacencyList is a weighted graph stored as a mapping from vertex to its
// outgoing edge set. Directed and undirected edges coexist: an undirected
// edge is simply a mutual pair of directed entries with duplicated weight.
//
// The zero value is not usable - construct with [New] or [NewFrom].
type AdjacencyList[V cmp.Ordered, E any] struct {
	vertices map[Vertex[V]]EdgeSet[V, E]
}

// New returns an empty graph.
func New[V cmp.Ordered, E any]() *AdjacencyList[V, E] {
	return &AdjacencyList[V, E]{vertices: make(map[Vertex[V]]EdgeSet[V, E])}
}

// NewFrom builds a graph from a caller-supplied adjacency mapping.
// The mapping is adopted as-is (not copied); nil inner maps are replaced
// with empty edge sets so every listed vertex counts as present.
func NewFrom[V cmp.Ordered, E any](vertices map[Vertex[V]]EdgeSet[V, E]) *AdjacencyList[V, E] {
	if vertices == nil {
		vertices = make(map[Vertex[V]]EdgeSet[V, E])
	}
	for v, edges := range vertices {
		if edges == nil {
			vertices[v] = make(EdgeSet[V, E])
		}
	}
	return &AdjacencyList[V, E]{vertices: vertices}
}

// Contains reports whether v is a vertex of the graph. A vertex with an
// empty edge set is still contained.
func (g *AdjacencyList[V, E]) Contains(v Vertex[V]) bool {
	_, ok := g.vertices[v]
	return ok
}

// Len returns the number of vertices.
func (g *AdjacencyList[V, E]) Len() int {
	return len(g.vertices)
}

// EdgeCount returns the number of stored directed edge entries. A mutual
// (undirected) pair counts as two.
func (g *AdjacencyList[V, E]) EdgeCount() int {
	var n int
	for _, edges := range g.vertices {
		n += len(edges)
	}
	return n
}

// Vertices returns all vertices in ascending label order.
func (g *AdjacencyList[V, E]) Vertices() []Vertex[V] {
	vs := make([]Vertex[V], 0, len(g.vertices))
	for v := range g.vertices {
		vs = append(vs, v)
	}
	slices.SortFunc(vs, Vertex[V].Compare)
	return vs
}

// Neighbors returns a copy of v's outgoing edge set, or false if v is not a
// vertex. Mutating the returned map does not affect the graph; use
// [AdjacencyList.NeighborsMut] for in-place weight edits.
func (g *AdjacencyList[V, E]) Neighbors(v Vertex[V]) (EdgeSet[V, E], bool) {
	edges, ok := g.vertices[v]
	if !ok {
		return nil, false
	}
	return maps.Clone(edges), true
}

// NeighborsMut returns v's live outgoing edge set, or false if v is not a
// vertex. Writes to the returned map mutate the graph directly; callers that
// only read should prefer [AdjacencyList.Neighbors].
func (g *AdjacencyList[V, E]) NeighborsMut(v Vertex[V]) (EdgeSet[V, E], bool) {
	edges, ok := g.vertices[v]
	return edges, ok
}

// AddVertex inserts v with an empty outgoing edge set. If v already exists
// its edges are discarded - this is an overwrite, not a merge.
func (g *AdjacencyList[V, E]) AddVertex(v Vertex[V]) {
	g.vertices[v] = make(EdgeSet[V, E])
}

// AddVertexWithDirectedEdges sets v's outgoing edge set to exactly edges,
// replacing any prior set. The target vertices of those edges are neither
// created nor mirrored. The edges map is copied, so later caller mutations
// of it do not leak into the graph.
func (g *AdjacencyList[V, E]) AddVertexWithDirectedEdges(v Vertex[V], edges EdgeSet[V, E]) {
	if edges == nil {
		g.vertices[v] = make(EdgeSet[V, E])
		return
	}
	g.vertices[v] = maps.Clone(edges)
}

// AddVertexWithUndirectedEdges connects v to each neighbor in edges with an
// undirected edge, one [AdjacencyList.AddEdgeUndirected] call at a time.
// Unlike the directed variant this mirrors every edge and creates missing
// endpoints; existing edges of v are kept and overwritten pairwise.
// Neighbors are applied in ascending label order.
func (g *AdjacencyList[V, E]) AddVertexWithUndirectedEdges(v Vertex[V], edges EdgeSet[V, E]) {
	for _, n := range sortedKeys(edges) {
		g.AddEdgeUndirected(v, n, edges[n])
	}
}

// AddEdgeDirected inserts or overwrites the single entry a→b with weight w.
// If a does not exist it is created with exactly that one edge. b is created
// with an empty edge set if missing, but no b→a entry is added.
func (g *AdjacencyList[V, E]) AddEdgeDirected(a, b Vertex[V], w E) {
	if edges, ok := g.vertices[a]; ok {
		edges[b] = w
	} else {
		g.vertices[a] = EdgeSet[V, E]{b: w}
	}
	if _, ok := g.vertices[b]; !ok {
		g.vertices[b] = make(EdgeSet[V, E])
	}
}

// AddEdgeUndirected inserts or overwrites the mutual pair a→b and b→a, each
// carrying its own copy of w. Missing endpoints are created as in
// [AdjacencyList.AddEdgeDirected]. Re-adding an edge replaces the stored
// weights; parallel edges between the same pair never accumulate.
func (g *AdjacencyList[V, E]) AddEdgeUndirected(a, b Vertex[V], w E) {
	if edges, ok := g.vertices[a]; ok {
		edges[b] = w
	} else {
		g.vertices[a] = EdgeSet[V, E]{b: w}
	}
	if edges, ok := g.vertices[b]; ok {
		edges[a] = w
	} else {
		g.vertices[b] = EdgeSet[V, E]{a: w}
	}
}

// RemoveVertex deletes v and, for each of v's recorded out-neighbors, the
// neighbor's own entry keyed by v. Removing a vertex added through
// undirected edges therefore cleans up both directions.
//
// Only vertices v points to are visited: a vertex c holding a directed edge
// c→v that v does not reciprocate keeps its now-dangling entry. Scanning all
// edge sets would make removal O(V) instead of O(deg(v)); callers that mix
// one-way edges into vertices they later remove must tolerate (or sweep)
// such stale entries themselves.
func (g *AdjacencyList[V, E]) RemoveVertex(v Vertex[V]) {
	if edges, ok := g.vertices[v]; ok {
		for n := range edges {
			if nEdges, ok := g.vertices[n]; ok {
				delete(nEdges, v)
			}
		}
	}
	delete(g.vertices, v)
}

// ToggleVertex removes v if present (with its current edges - defaultEdges
// is ignored) and otherwise inserts it via
// [AdjacencyList.AddVertexWithDirectedEdges] with defaultEdges. Toggling
// twice restores v's presence state, which is what makes it the natural
// primitive for flipping maze walls.
func (g *AdjacencyList[V, E]) ToggleVertex(v Vertex[V], defaultEdges EdgeSet[V, E]) {
	if g.Contains(v) {
		g.RemoveVertex(v)
	} else {
		g.AddVertexWithDirectedEdges(v, defaultEdges)
	}
}

// sortedKeys returns the vertices of an edge set in ascending label order.
func sortedKeys[V cmp.Ordered, E any](edges EdgeSet[V, E]) []Vertex[V] {
	ks := make([]Vertex[V], 0, len(edges))
	for v := range edges {
		ks = append(ks, v)
	}
	slices.SortFunc(ks, Vertex[V].Compare)
	return ks
}
