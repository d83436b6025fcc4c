package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mlorenz/wayfind/pkg/graph"
	"github.com/mlorenz/wayfind/pkg/graphio"
	"github.com/mlorenz/wayfind/pkg/render"
	"github.com/mlorenz/wayfind/pkg/route"
)

// Render generates artifacts for every requested format. The route result
// may be nil; when set, its path is highlighted in DOT and SVG output.
func Render(ctx context.Context, g *graph.AdjacencyList[string, float64], res *route.Result[string], opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	renderOpts := render.Options{
		Weights: opts.Weights,
		Path:    pathLabels(res),
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, g, renderOpts, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, g *graph.AdjacencyList[string, float64], opts render.Options, format string) ([]byte, error) {
	switch format {
	case FormatMermaid:
		return append([]byte(g.Mermaid()), '\n'), nil

	case FormatJSON:
		var buf bytes.Buffer
		if err := graphio.WriteJSON(g, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case FormatDOT:
		return []byte(render.ToDOT(g, opts)), nil

	case FormatSVG:
		return render.RenderSVG(ctx, render.ToDOT(g, opts))

	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}

// pathLabels extracts the ordered vertex labels of a route, or nil.
func pathLabels(res *route.Result[string]) []string {
	if res == nil || len(res.Path) == 0 {
		return nil
	}
	labels := make([]string, len(res.Path))
	for i, v := range res.Path {
		labels[i] = v.Label
	}
	return labels
}
