package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/mlorenz/wayfind/pkg/graph"
)

// Graph is the wire representation of an adjacency list.
type Graph struct {
	Vertices []string `json:"vertices"`
	Edges    []Edge   `json:"edges"`
}

// Edge is a single weighted connection. Undirected edges are stored once
// with the flag set instead of as two mirrored entries.
type Edge struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Weight     float64 `json:"weight"`
	Undirected bool    `json:"undirected,omitempty"`
}

// FromGraph converts an adjacency list into its wire form. Mutual pairs
// with equal weights become one undirected edge keyed at the smaller label;
// everything else stays directed. Output order is ascending by label.
func FromGraph(g *graph.AdjacencyList[string, float64]) Graph {
	out := Graph{Vertices: []string{}, Edges: []Edge{}}

	for _, v := range g.Vertices() {
		out.Vertices = append(out.Vertices, v.Label)

		edges, _ := g.Neighbors(v)
		for _, n := range sortedVertices(edges) {
			w := edges[n]
			back, _ := g.Neighbors(n)
			if bw, mutual := back[v]; mutual && bw == w {
				if n.Label < v.Label {
					continue // mirror already emitted from n's side
				}
				out.Edges = append(out.Edges, Edge{From: v.Label, To: n.Label, Weight: w, Undirected: true})
				continue
			}
			out.Edges = append(out.Edges, Edge{From: v.Label, To: n.Label, Weight: w})
		}
	}

	return out
}

// ToGraph builds an adjacency list from the wire form. Listed vertices are
// created first (edge-less ones included); edge endpoints not listed are
// created implicitly, exactly as the mutation API would.
func ToGraph(data Graph) *graph.AdjacencyList[string, float64] {
	g := graph.New[string, float64]()
	for _, label := range data.Vertices {
		g.AddVertex(graph.NewVertex(label))
	}
	for _, e := range data.Edges {
		from, to := graph.NewVertex(e.From), graph.NewVertex(e.To)
		if e.Undirected {
			g.AddEdgeUndirected(from, to, e.Weight)
		} else {
			g.AddEdgeDirected(from, to, e.Weight)
		}
	}
	return g
}

// WriteJSON encodes g as indented JSON to w.
func WriteJSON(g *graph.AdjacencyList[string, float64], w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a JSON graph from r.
func ReadJSON(r io.Reader) (*graph.AdjacencyList[string, float64], error) {
	var data Graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToGraph(data), nil
}

// Export writes g to a JSON file at path.
func Export(g *graph.AdjacencyList[string, float64], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// Import reads the JSON file at path and returns the decoded graph.
func Import(path string) (*graph.AdjacencyList[string, float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func sortedVertices(edges graph.EdgeSet[string, float64]) []graph.Vertex[string] {
	ks := make([]graph.Vertex[string], 0, len(edges))
	for v := range edges {
		ks = append(ks, v)
	}
	slices.SortFunc(ks, graph.Vertex[string].Compare)
	return ks
}
