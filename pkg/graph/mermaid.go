package graph

import (
	"fmt"
	"strings"
)

// Mermaid connector markers. A mutual pair renders with the bidirectional
// marker from both perspectives; a one-way edge gets an arrow.
const (
	mermaidHeader       = "flowchart LR"
	connectorUndirected = "---"
	connectorDirected   = "-->"
)

// Mermaid serializes the graph as a Mermaid flowchart, one line per stored
// directed edge entry in ascending outer/inner label order. An edge v→n is
// drawn with the bidirectional marker when n's own edge set holds an entry
// keyed by v - whether that pair came from an undirected insert or from two
// coincidental directed ones - and with an arrow otherwise. Because every
// stored entry emits its own line, a mutual pair contributes two lines.
//
// The output is deterministic: the same graph always yields the same text.
func (g *AdjacencyList[V, E]) Mermaid() string {
	var b strings.Builder
	b.WriteString(mermaidHeader)

	for _, v := range g.Vertices() {
		edges := g.vertices[v]
		for _, n := range sortedKeys(edges) {
			connector := connectorDirected
			if back, ok := g.vertices[n]; ok {
				if _, mutual := back[v]; mutual {
					connector = connectorUndirected
				}
			}
			fmt.Fprintf(&b, "\n    %v %s %v", v.Label, connector, n.Label)
		}
	}

	return b.String()
}
