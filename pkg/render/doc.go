// Package render turns wayfind graphs into visual diagram formats.
//
// # Overview
//
// Three output stages build on each other:
//
//   - Mermaid text comes straight from the graph ([graph.AdjacencyList.Mermaid]);
//     this package only adds the file plumbing.
//   - [ToDOT] emits Graphviz DOT source, optionally with edge-weight labels
//     and a highlighted solved path.
//   - [RenderSVG] rasterizes DOT to SVG in-process via
//     [github.com/goccy/go-graphviz] (no external binaries needed).
//
// # Edge rendering
//
// Mutual edge pairs with equal weights draw once without an arrowhead
// (dir=none); every other stored entry draws as a one-way arrow. This
// mirrors the Mermaid exporter's bidirectional-marker rule, so the two
// formats always agree on which connections are two-way.
package render
