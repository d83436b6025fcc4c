package render

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"github.com/mlorenz/wayfind/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// Weights adds edge-weight labels to every connection.
	Weights bool
	// Path is a solved route (vertex labels in order). Its vertices and the
	// edges between consecutive entries are emphasized.
	Path []string
}

// ToDOT converts a graph to Graphviz DOT source. Vertices and edges appear
// in ascending label order; a mutual pair with equal weights is drawn once
// without an arrowhead, everything else as a one-way arrow.
func ToDOT(g *graph.AdjacencyList[string, float64], opts Options) string {
	onPath := make(map[string]bool, len(opts.Path))
	pathEdge := make(map[[2]string]bool)
	for i, label := range opts.Path {
		onPath[label] = true
		if i > 0 {
			pathEdge[[2]string{opts.Path[i-1], label}] = true
			pathEdge[[2]string{label, opts.Path[i-1]}] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		attrs := ""
		if onPath[v.Label] {
			attrs = " [fillcolor=palegreen, penwidth=2]"
		}
		fmt.Fprintf(&buf, "  %q%s;\n", v.Label, attrs)
	}

	buf.WriteString("\n")
	for _, v := range g.Vertices() {
		edges, _ := g.Neighbors(v)
		for _, n := range sortedVertices(edges) {
			w := edges[n]
			back, _ := g.Neighbors(n)
			bw, mutual := back[v]
			if mutual && bw == w && n.Label < v.Label {
				continue // drawn once from the smaller endpoint
			}
			fmt.Fprintf(&buf, "  %q -> %q%s;\n", v.Label, n.Label,
				edgeAttrs(w, mutual && bw == w, pathEdge[[2]string{v.Label, n.Label}], opts.Weights))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeAttrs(w float64, undirected, highlighted, labeled bool) string {
	var attrs []string
	if undirected {
		attrs = append(attrs, "dir=none")
	}
	if labeled {
		attrs = append(attrs, fmt.Sprintf("label=%q", strconv.FormatFloat(w, 'g', -1, 64)))
	}
	if highlighted {
		attrs = append(attrs, "color=forestgreen", "penwidth=2.5")
	}
	if len(attrs) == 0 {
		return ""
	}
	s := " ["
	for i, a := range attrs {
		if i > 0 {
			s += ", "
		}
		s += a
	}
	return s + "]"
}

func sortedVertices(edges graph.EdgeSet[string, float64]) []graph.Vertex[string] {
	ks := make([]graph.Vertex[string], 0, len(edges))
	for v := range edges {
		ks = append(ks, v)
	}
	slices.SortFunc(ks, graph.Vertex[string].Compare)
	return ks
}
