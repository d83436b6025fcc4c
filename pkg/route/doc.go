// Package route implements shortest-path search over the wayfind graph.
//
// # Overview
//
// The graph substrate stores no algorithms; this package supplies them as
// pure consumers of the neighbor-query API:
//
//   - [Dijkstra]: minimum-cost path for non-negative float64 weights, using a
//     min-heap with lazy decrease-key.
//   - [BFS]: minimum-hop path ignoring weights entirely.
//
// Both return a [Result] holding the reconstructed path (start through goal
// inclusive), its cost, and the number of vertices settled during search.
//
// # Errors
//
// Invalid inputs fail fast with sentinel errors (nil graph, unknown
// endpoint, negative weight). An unreachable goal is reported as [ErrNoPath]
// rather than an empty result, so callers can distinguish "no route" from
// "zero-cost route".
//
// # Determinism
//
// Neighbors are relaxed in ascending label order, so between equal-cost
// alternatives the search settles on the same path every run.
package route
