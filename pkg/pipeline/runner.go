package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mlorenz/wayfind/pkg/cache"
	"github.com/mlorenz/wayfind/pkg/graph"
	"github.com/mlorenz/wayfind/pkg/graphio"
	"github.com/mlorenz/wayfind/pkg/route"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → solve → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Build
	buildStart := time.Now()
	g, buildHit, err := r.BuildWithCacheInfo(ctx, &opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Graph = g
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.VertexCount = g.Len()
	result.Stats.EdgeCount = g.EdgeCount()
	result.CacheInfo.BuildHit = buildHit

	// Graph hash keys artifact caching and identifies the run.
	if data, err := marshalGraph(g); err == nil {
		result.GraphHash = cache.Hash(data)
	}

	r.Logger.Info("built graph",
		"vertices", g.Len(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.BuildTime)

	// Stage 2: Solve (optional)
	if opts.ShouldSolve() {
		solveStart := time.Now()
		res, err := Solve(g, opts)
		if err != nil {
			return nil, fmt.Errorf("solve: %w", err)
		}
		result.Route = &res
		result.Stats.SolveTime = time.Since(solveStart)

		r.Logger.Info("solved route",
			"algorithm", opts.SolveAlgorithm(),
			"hops", len(res.Path)-1,
			"cost", res.Cost,
			"settled", res.Settled,
			"duration", result.Stats.SolveTime)
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, g, result.Route, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// BuildWithCacheInfo materializes the graph with caching and returns cache
// hit info. For scenario sources the scenario's route table is applied to
// any unset solve options, which is why opts is taken by pointer.
func (r *Runner) BuildWithCacheInfo(ctx context.Context, opts *Options) (*graph.AdjacencyList[string, float64], bool, error) {
	if err := opts.ValidateForBuild(); err != nil {
		return nil, false, err
	}
	r.applyLogger(opts)

	data, err := readSource(*opts)
	if err != nil {
		return nil, false, err
	}

	// Scenarios and exported graphs are dominated by parsing, which a
	// cached copy could not skip. Build them directly.
	if opts.Scenario != "" || opts.Graph != "" {
		g, sc, err := buildFromSource(*opts, data)
		if err != nil {
			return nil, false, err
		}
		if sc != nil {
			opts.applyRoute(sc.Route)
		}
		return g, false, nil
	}

	// Grid builds are cached: expanding a large map into a weighted
	// adjacency list dominates the build stage. Connectivity changes the
	// result, so it participates in the key.
	cacheKey := r.Keyer.GraphKey(cache.Hash(fmt.Appendf(data, "|diagonal=%t", opts.Diagonal)))

	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if g, err := graphio.ReadJSON(bytes.NewReader(cached)); err == nil {
				return g, true, nil // Cache hit
			}
		}
	}

	g, _, err := buildFromSource(*opts, data)
	if err != nil {
		return nil, false, err
	}

	if !opts.Refresh {
		if out, err := marshalGraph(g); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, out, cache.TTLGraph)
		}
	}

	return g, false, nil // Cache miss
}

// Build is a convenience wrapper that calls BuildWithCacheInfo and discards the cache hit info.
func (r *Runner) Build(ctx context.Context, opts Options) (*graph.AdjacencyList[string, float64], error) {
	g, _, err := r.BuildWithCacheInfo(ctx, &opts)
	return g, err
}

// Solve computes a route through g using the runner's logger.
func (r *Runner) Solve(g *graph.AdjacencyList[string, float64], opts Options) (route.Result[string], error) {
	r.applyLogger(&opts)
	return Solve(g, opts)
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info. Artifacts are content-addressed by graph hash and render options, so
// stale entries cannot be served and Refresh is not consulted.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *graph.AdjacencyList[string, float64], res *route.Result[string], opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	data, err := marshalGraph(g)
	if err != nil {
		return nil, false, fmt.Errorf("serialize graph for cache key: %w", err)
	}
	graphHash := cache.Hash(data)
	keyOpts := cache.ArtifactKeyOpts{
		Weights: opts.Weights,
		Path:    pathLabels(res),
	}

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(graphHash, format, keyOpts)
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	rendered, err := Render(ctx, g, res, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(graphHash, format, keyOpts)
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g *graph.AdjacencyList[string, float64], res *route.Result[string], opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, res, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// marshalGraph serializes g into its canonical JSON form.
func marshalGraph(g *graph.AdjacencyList[string, float64]) ([]byte, error) {
	var buf bytes.Buffer
	if err := graphio.WriteJSON(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
