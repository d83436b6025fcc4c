// Package scenario loads TOML scenario files describing a graph and an
// optional route query.
//
// A scenario is the declarative front door to wayfind: instead of piping
// JSON between commands, a user writes the graph down once and points the
// solve and render commands at the file.
//
//	name = "harbor"
//
//	[route]
//	algorithm = "dijkstra"
//	start = "dock"
//	goal = "lighthouse"
//
//	[[vertices]]
//	label = "buoy"          # explicit, possibly edge-less vertex
//
//	[[edges]]
//	from = "dock"
//	to = "market"
//	weight = 2.5
//	undirected = true
//
// Vertices referenced only by edges need no [[vertices]] entry; they are
// created implicitly exactly as the graph's mutation API would.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mlorenz/wayfind/pkg/graph"
)

// Sentinel errors for scenario validation.
var (
	// ErrMissingEndpoint indicates an edge without a from or to label.
	ErrMissingEndpoint = errors.New("scenario: edge endpoint missing")
	// ErrUnknownAlgorithm indicates a route algorithm other than dijkstra or bfs.
	ErrUnknownAlgorithm = errors.New("scenario: unknown algorithm")
	// ErrRouteEndpoint indicates a route start/goal that no vertex or edge declares.
	ErrRouteEndpoint = errors.New("scenario: route endpoint not in graph")
)

// Route algorithms accepted in scenario files.
const (
	AlgorithmDijkstra = "dijkstra"
	AlgorithmBFS      = "bfs"
)

// Scenario is a parsed scenario file.
type Scenario struct {
	Name     string       `toml:"name"`
	Route    *Route       `toml:"route"`
	Vertices []VertexDecl `toml:"vertices"`
	Edges    []EdgeDecl   `toml:"edges"`
}

// Route is an optional solve request embedded in a scenario.
type Route struct {
	Algorithm string `toml:"algorithm"` // defaults to dijkstra
	Start     string `toml:"start"`
	Goal      string `toml:"goal"`
}

// VertexDecl declares an explicit vertex.
type VertexDecl struct {
	Label string `toml:"label"`
}

// EdgeDecl declares a weighted edge.
type EdgeDecl struct {
	From       string  `toml:"from"`
	To         string  `toml:"to"`
	Weight     float64 `toml:"weight"`
	Undirected bool    `toml:"undirected"`
}

// Parse decodes and validates scenario TOML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

func (s *Scenario) validate() error {
	for i, e := range s.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edge %d (%q → %q)", ErrMissingEndpoint, i, e.From, e.To)
		}
	}

	if s.Route == nil {
		return nil
	}
	switch s.Route.Algorithm {
	case "", AlgorithmDijkstra, AlgorithmBFS:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s.Route.Algorithm)
	}
	declared := s.declaredLabels()
	for _, endpoint := range []string{s.Route.Start, s.Route.Goal} {
		if endpoint != "" && !declared[endpoint] {
			return fmt.Errorf("%w: %q", ErrRouteEndpoint, endpoint)
		}
	}
	return nil
}

func (s *Scenario) declaredLabels() map[string]bool {
	labels := make(map[string]bool)
	for _, v := range s.Vertices {
		labels[v.Label] = true
	}
	for _, e := range s.Edges {
		labels[e.From] = true
		labels[e.To] = true
	}
	return labels
}

// Algorithm returns the requested route algorithm, defaulting to dijkstra.
// Returns "" when the scenario has no route section.
func (s *Scenario) Algorithm() string {
	if s.Route == nil {
		return ""
	}
	if s.Route.Algorithm == "" {
		return AlgorithmDijkstra
	}
	return s.Route.Algorithm
}

// Graph materializes the scenario into an adjacency list. Declared vertices
// are inserted first so edge-less ones exist; edges then create any
// remaining endpoints implicitly.
func (s *Scenario) Graph() *graph.AdjacencyList[string, float64] {
	g := graph.New[string, float64]()
	for _, v := range s.Vertices {
		g.AddVertex(graph.NewVertex(v.Label))
	}
	for _, e := range s.Edges {
		from, to := graph.NewVertex(e.From), graph.NewVertex(e.To)
		if e.Undirected {
			g.AddEdgeUndirected(from, to, e.Weight)
		} else {
			g.AddEdgeDirected(from, to, e.Weight)
		}
	}
	return g
}
