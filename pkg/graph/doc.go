// Package graph provides a generic, weighted adjacency-list graph supporting
// both directed and undirected edges.
//
// # Overview
//
// The graph is the substrate the rest of wayfind builds on: grid mazes are
// compiled into it, shortest-path algorithms query it, and diagram exporters
// walk it. The package itself implements no traversal - it only stores
// vertices and weighted edges and answers neighbor lookups.
//
// Vertices are identified by a caller-supplied label of any ordered type
// ([Vertex] is a thin wrapper used as a map key). Edge weights are opaque to
// the graph: any type can be stored, and the graph only copies values around.
//
// # Representation
//
// An [AdjacencyList] maps each vertex to its outgoing edge set, itself a map
// from neighbor vertex to edge weight. An undirected edge between a and b is
// stored as two independent directed entries a→b and b→a carrying copies of
// the same weight. A vertex with an empty edge set is still present in the
// graph.
//
// Iteration (via [AdjacencyList.Vertices] and the Mermaid exporter) is always
// in ascending label order, so exports are deterministic and idempotent.
//
// # Absence, not errors
//
// Lookups on missing vertices report absence through a boolean result rather
// than an error; mutation methods never fail. The one sharp edge is
// [AdjacencyList.RemoveVertex], which only cleans up edges mirrored in the
// removed vertex's own neighbor set - see its doc comment.
//
// # Concurrency
//
// An AdjacencyList is a plain in-memory value with no internal locking.
// Concurrent readers are fine; any mutation requires external synchronization.
package graph
