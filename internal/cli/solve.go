package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlorenz/wayfind/pkg/pipeline"
)

// solveCommand creates the solve command for computing routes.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Compute a route between two vertices",
		Long: `Compute a route between two vertices.

The input may be a grid map, a TOML scenario, or a JSON graph; the source is
detected from the file extension. Grid vertices are addressed as "x,y"
(e.g. --start 0,0 --goal 9,4). Scenarios may carry their own route table,
in which case --start and --goal are optional and override it when given.

The solved route is printed and highlighted in any rendered output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := sourceOptions(args[0])
			src.Start = opts.Start
			src.Goal = opts.Goal
			src.Algorithm = opts.Algorithm
			src.Diagonal = opts.Diagonal
			src.Refresh = opts.Refresh
			src.Weights = opts.Weights
			if formatsStr != "" {
				src.Formats = parseFormats(formatsStr, pipeline.FormatMermaid)
				if err := pipeline.ValidateFormats(src.Formats); err != nil {
					return err
				}
			}
			if src.Scenario == "" && !src.ShouldSolve() {
				return fmt.Errorf("--start and --goal are required for %s", args[0])
			}
			return c.runSolve(cmd.Context(), args[0], src, output, noCache, formatsStr != "")
		},
	}

	cmd.Flags().StringVar(&opts.Start, "start", "", "start vertex label")
	cmd.Flags().StringVar(&opts.Goal, "goal", "", "goal vertex label")
	cmd.Flags().StringVarP(&opts.Algorithm, "algorithm", "a", "", "routing algorithm: dijkstra (default), bfs")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "also render output format(s): mermaid, dot, svg, json (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&opts.Weights, "weights", false, "label edges with their weights")
	cmd.Flags().BoolVar(&opts.Diagonal, "diagonal", false, "use 8-way connectivity for grid maps")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "rebuild even if cached")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runSolve executes the pipeline and reports the solved route.
func (c *CLI) runSolve(ctx context.Context, input string, opts pipeline.Options, output string, noCache, render bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Solving %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Solve failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if result.Route == nil {
		return fmt.Errorf("%s has no route table; pass --start and --goal", input)
	}

	labels := make([]string, len(result.Route.Path))
	for i, v := range result.Route.Path {
		labels[i] = v.Label
	}
	prog.done(fmt.Sprintf("Solved route in %d hops", len(labels)-1))

	printSuccess("Route found")
	printRoute(labels, result.Route.Cost)
	printStats(result.Stats.VertexCount, result.Stats.EdgeCount, result.CacheInfo.BuildHit)

	if render {
		printNewline()
		if err := writeArtifacts(ctx, result.Artifacts, opts.Formats, input, output); err != nil {
			return err
		}
	}
	return nil
}
