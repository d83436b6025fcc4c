// Package pipeline provides the core routing pipeline for wayfind.
//
// This package implements the complete build → solve → render pipeline that
// backs every CLI command. Centralizing the stages here keeps behavior
// identical whether a graph comes from a scenario file, a grid map, or a
// previously exported JSON graph.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: Materialize a weighted graph from one of the input sources
//  2. Solve: Compute a route between two vertices (optional)
//  3. Render: Generate output in various formats (Mermaid, DOT, SVG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Scenario: "harbor.toml",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Build only
//	g, err := runner.Build(ctx, opts)
//
//	// Solve with an existing graph
//	res, err := runner.Solve(g, opts)
//
//	// Render with an existing graph and route
//	artifacts, err := runner.Render(ctx, g, res, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mlorenz/wayfind/pkg/graph"
	"github.com/mlorenz/wayfind/pkg/route"
	"github.com/mlorenz/wayfind/pkg/scenario"
)

// Format constants for output formats.
const (
	FormatMermaid = "mermaid"
	FormatDOT     = "dot"
	FormatSVG     = "svg"
	FormatJSON    = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatMermaid: true,
	FormatDOT:     true,
	FormatSVG:     true,
	FormatJSON:    true,
}

// ValidAlgorithms is the set of supported routing algorithms.
var ValidAlgorithms = map[string]bool{
	scenario.AlgorithmDijkstra: true,
	scenario.AlgorithmBFS:      true,
}

// DefaultAlgorithm is used when a solve is requested without naming one.
const DefaultAlgorithm = scenario.AlgorithmDijkstra

// DefaultFormat is the output produced when no formats are requested.
const DefaultFormat = FormatMermaid

// Options contains all configuration for the routing pipeline.
// The struct supports JSON serialization so runs can be recorded and replayed.
type Options struct {
	// Build options. Exactly one source must be set.
	Scenario string `json:"scenario,omitempty"` // path to a TOML scenario
	Grid     string `json:"grid,omitempty"`     // path to an ASCII grid map
	Graph    string `json:"graph,omitempty"`    // path to an exported JSON graph
	Diagonal bool   `json:"diagonal,omitempty"` // 8-way grid connectivity
	Refresh  bool   `json:"refresh,omitempty"`  // bypass the cache

	// Solve options. A solve runs when both Start and Goal are set,
	// either here or by the scenario's route table.
	Algorithm string `json:"algorithm,omitempty"`
	Start     string `json:"start,omitempty"`
	Goal      string `json:"goal,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Weights bool     `json:"weights,omitempty"` // draw edge weight labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the materialized weighted graph.
	Graph *graph.AdjacencyList[string, float64]

	// GraphHash is the content hash of the graph's canonical JSON form.
	GraphHash string

	// Route holds the solve result, or nil when no solve was requested.
	Route *route.Result[string]

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount int
	EdgeCount   int
	BuildTime   time.Duration
	SolveTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each cached pipeline stage.
type CacheInfo struct {
	BuildHit  bool // Whether the built graph came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: mermaid, dot, svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAlgorithm checks that a routing algorithm is valid.
func ValidateAlgorithm(algorithm string) error {
	if !ValidAlgorithms[algorithm] {
		return fmt.Errorf("invalid algorithm: %q (must be one of: dijkstra, bfs)", algorithm)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. The method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForBuild(); err != nil {
		return err
	}
	if err := o.ValidateForSolve(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForBuild checks that exactly one graph source is configured.
func (o *Options) ValidateForBuild() error {
	sources := 0
	for _, s := range []string{o.Scenario, o.Grid, o.Graph} {
		if s != "" {
			sources++
		}
	}
	if sources == 0 {
		return fmt.Errorf("a scenario, grid, or graph input is required")
	}
	if sources > 1 {
		return fmt.Errorf("scenario, grid, and graph inputs are mutually exclusive")
	}
	o.setLoggerDefault()
	return nil
}

// ValidateForSolve validates and sets defaults for route computation.
// Start and Goal stay optional here: a scenario's route table may supply
// them during the build stage.
func (o *Options) ValidateForSolve() error {
	if (o.Start == "") != (o.Goal == "") {
		return fmt.Errorf("start and goal must be set together")
	}
	if o.Algorithm != "" {
		if err := ValidateAlgorithm(o.Algorithm); err != nil {
			return err
		}
	}
	o.setLoggerDefault()
	return nil
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	o.setLoggerDefault()
	return ValidateFormats(o.Formats)
}

// ShouldSolve reports whether a solve stage will run.
func (o *Options) ShouldSolve() bool {
	return o.Start != "" && o.Goal != ""
}

// SolveAlgorithm returns the algorithm a solve would use, applying the
// default when none was named.
func (o *Options) SolveAlgorithm() string {
	if o.Algorithm == "" {
		return DefaultAlgorithm
	}
	return o.Algorithm
}

func (o *Options) setLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
