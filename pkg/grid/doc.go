// Package grid models a rectangular maze of cells and compiles it into the
// wayfind adjacency-list graph.
//
// # Overview
//
// A [Grid] holds per-cell movement costs and wall flags. Open cells become
// graph vertices labeled "x,y"; undirected edges connect open neighbors
// under 4- or 8-connectivity, weighted by the mean of the two cell costs.
// Walls simply do not appear in the graph, which is what makes toggling a
// wall equivalent to toggling a vertex.
//
// # Text maps
//
// [Parse] reads a human-editable text map:
//
//	#####
//	#..3#
//	#.#.#
//	#...#
//	#####
//
// '#' is a wall, '.' an open cell of cost 1, and digits '1'-'9' open cells
// with that movement cost. Rows must be equally long.
//
// # Editing a built graph
//
// [Grid.ToggleCell] keeps an already-built graph in sync when the user flips
// a wall: closing a cell removes its vertex (which also cleans up the
// mirrored entries of its neighbors), reopening re-adds it with mirrored
// undirected edges to the currently open neighbors.
package grid
