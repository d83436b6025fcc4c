package pipeline

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mlorenz/wayfind/pkg/graph"
	"github.com/mlorenz/wayfind/pkg/graphio"
	"github.com/mlorenz/wayfind/pkg/grid"
	"github.com/mlorenz/wayfind/pkg/scenario"
)

// buildFromSource materializes a graph from raw source bytes.
// For scenario sources the parsed scenario is returned alongside the graph
// so callers can pick up its route table.
func buildFromSource(opts Options, data []byte) (*graph.AdjacencyList[string, float64], *scenario.Scenario, error) {
	switch {
	case opts.Scenario != "":
		sc, err := scenario.Parse(data)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario %s: %w", opts.Scenario, err)
		}
		return sc.Graph(), sc, nil

	case opts.Grid != "":
		g, err := grid.Parse(string(data), grid.Options{Conn: opts.gridConn()})
		if err != nil {
			return nil, nil, fmt.Errorf("parse grid %s: %w", opts.Grid, err)
		}
		return g.Build(), nil, nil

	case opts.Graph != "":
		g, err := graphio.ReadJSON(bytes.NewReader(data))
		if err != nil {
			return nil, nil, fmt.Errorf("read graph %s: %w", opts.Graph, err)
		}
		return g, nil, nil

	default:
		return nil, nil, fmt.Errorf("no graph source configured")
	}
}

// sourcePath returns the configured input path.
func (o *Options) sourcePath() string {
	switch {
	case o.Scenario != "":
		return o.Scenario
	case o.Grid != "":
		return o.Grid
	default:
		return o.Graph
	}
}

// gridConn maps the Diagonal flag to a grid connectivity.
func (o *Options) gridConn() grid.Connectivity {
	if o.Diagonal {
		return grid.Conn8
	}
	return grid.Conn4
}

// readSource loads the configured input file.
func readSource(opts Options) ([]byte, error) {
	path := opts.sourcePath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}
	return data, nil
}

// applyRoute fills unset solve options from a scenario's route table.
func (o *Options) applyRoute(rt *scenario.Route) {
	if rt == nil {
		return
	}
	if o.Start == "" && o.Goal == "" {
		o.Start = rt.Start
		o.Goal = rt.Goal
	}
	if o.Algorithm == "" {
		o.Algorithm = rt.Algorithm
	}
}
