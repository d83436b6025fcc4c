// Package pkg provides the core libraries for wayfind route finding.
//
// # Overview
//
// Wayfind builds weighted directed and undirected graphs, routes through
// them, and renders the results. The pkg directory is organized into four
// main areas:
//
//  1. [graph] - The generic weighted adjacency list at the heart of everything
//  2. [grid], [scenario], [graphio] - Graph sources (ASCII maps, TOML, JSON)
//  3. [route], [render] - Routing algorithms and diagram output
//  4. [pipeline], [cache] - Orchestration (build → solve → render) and caching
//
// # Architecture
//
// The typical data flow through wayfind:
//
//	Grid map / Scenario / JSON graph
//	         ↓
//	    [grid] / [scenario] / [graphio] (materialize the graph)
//	         ↓
//	    [graph] package (weighted adjacency list)
//	         ↓
//	    [route] package (Dijkstra, BFS)
//	         ↓
//	    [render] package (Mermaid, DOT, SVG output)
//
// # Quick Start
//
// Build a graph from a grid map and route through it:
//
//	g, err := grid.Parse(mapText, grid.Options{Conn: grid.Conn4})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	al := g.Build()
//	res, err := route.Dijkstra(al, grid.Vertex(0, 0), grid.Vertex(9, 4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(al.Mermaid())
//
// Or run the whole pipeline with caching:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Grid:    "maze.txt",
//	    Start:   "0,0",
//	    Goal:    "9,4",
//	    Formats: []string{"svg"},
//	})
package pkg
