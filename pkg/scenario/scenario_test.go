package scenario

import (
	"errors"
	"testing"

	"github.com/mlorenz/wayfind/pkg/graph"
)

const harbor = `
name = "harbor"

[route]
start = "dock"
goal = "lighthouse"

[[vertices]]
label = "buoy"

[[edges]]
from = "dock"
to = "market"
weight = 2.5
undirected = true

[[edges]]
from = "market"
to = "lighthouse"
weight = 4.0
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(harbor))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if s.Name != "harbor" {
		t.Errorf("Name = %q, want harbor", s.Name)
	}
	if got := s.Algorithm(); got != AlgorithmDijkstra {
		t.Errorf("Algorithm() = %q, want dijkstra default", got)
	}
	if len(s.Edges) != 2 || len(s.Vertices) != 1 {
		t.Errorf("parsed %d edges / %d vertices", len(s.Edges), len(s.Vertices))
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{
			name:    "MissingEndpoint",
			text:    "[[edges]]\nfrom = \"a\"\nweight = 1.0",
			wantErr: ErrMissingEndpoint,
		},
		{
			name:    "UnknownAlgorithm",
			text:    "[route]\nalgorithm = \"astar\"\n[[edges]]\nfrom = \"a\"\nto = \"b\"\nweight = 1.0",
			wantErr: ErrUnknownAlgorithm,
		},
		{
			name:    "RouteEndpointNotDeclared",
			text:    "[route]\nstart = \"ghost\"\n[[edges]]\nfrom = \"a\"\nto = \"b\"\nweight = 1.0",
			wantErr: ErrRouteEndpoint,
		},
		{
			name: "BFSAccepted",
			text: "[route]\nalgorithm = \"bfs\"\nstart = \"a\"\ngoal = \"b\"\n[[edges]]\nfrom = \"a\"\nto = \"b\"\nweight = 1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.text))
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Parse: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseMalformedTOML(t *testing.T) {
	if _, err := Parse([]byte("[[[")); err == nil {
		t.Error("malformed TOML must error")
	}
}

func TestGraph(t *testing.T) {
	s, err := Parse([]byte(harbor))
	if err != nil {
		t.Fatal(err)
	}

	g := s.Graph()
	if g.Len() != 4 {
		t.Fatalf("Len = %d, want dock, market, lighthouse, buoy", g.Len())
	}
	if !g.Contains(graph.NewVertex("buoy")) {
		t.Error("declared edge-less vertex missing")
	}

	// Undirected edge is mirrored; directed one is not.
	n, _ := g.Neighbors(graph.NewVertex("market"))
	if n[graph.NewVertex("dock")] != 2.5 {
		t.Error("undirected scenario edge must mirror")
	}
	n, _ = g.Neighbors(graph.NewVertex("lighthouse"))
	if len(n) != 0 {
		t.Errorf("lighthouse neighbors = %v, want empty", n)
	}
}
