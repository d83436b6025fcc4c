// Package graphio serializes wayfind graphs as JSON for interchange between
// commands and with external tooling.
//
// # Format
//
// A graph is an object with "vertices" and "edges" arrays:
//
//	{
//	  "vertices": ["a", "b", "c"],
//	  "edges": [
//	    {"from": "a", "to": "b", "weight": 1.5, "undirected": true},
//	    {"from": "b", "to": "c", "weight": 2}
//	  ]
//	}
//
// Vertices are listed explicitly so edge-less vertices survive a round trip.
// A mutual pair with equal weights collapses to a single undirected edge on
// export; mutual entries with differing weights stay as two directed edges.
// Edge endpoints absent from "vertices" are created implicitly on import,
// mirroring the graph's own insertion semantics.
//
// Output is deterministic: vertices and edges are emitted in ascending label
// order, so exporting the same graph twice produces identical bytes.
//
// # Usage
//
// [WriteJSON] and [ReadJSON] operate on io.Writer/io.Reader; [Export] and
// [Import] are the file conveniences the CLI uses.
package graphio
