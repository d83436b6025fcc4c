package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlorenz/wayfind/pkg/pipeline"
)

// formatExtensions maps output formats to file extensions.
var formatExtensions = map[string]string{
	pipeline.FormatMermaid: "mmd",
	pipeline.FormatDOT:     "dot",
	pipeline.FormatSVG:     "svg",
	pipeline.FormatJSON:    "json",
}

// renderCommand creates the render command for generating diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [input]",
		Short: "Render a graph as a diagram",
		Long: `Render a graph as a diagram.

The input may be a grid map, a TOML scenario, or a JSON graph exported by
'wayfind grid'; the source is detected from the file extension. When a
scenario declares a route table, the solved route is highlighted in DOT and
SVG output.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := sourceOptions(args[0])
			src.Diagonal = opts.Diagonal
			src.Refresh = opts.Refresh
			src.Weights = opts.Weights
			src.Formats = parseFormats(formatsStr, pipeline.FormatSVG)
			if err := pipeline.ValidateFormats(src.Formats); err != nil {
				return err
			}
			if src.Weights && !weightsApply(src.Formats) {
				printWarning("--weights only affects dot and svg output")
			}
			return c.runRender(cmd.Context(), args[0], src, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), mermaid, dot, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.Weights, "weights", false, "label edges with their weights")
	cmd.Flags().BoolVar(&opts.Diagonal, "diagonal", false, "use 8-way connectivity for grid maps")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "rebuild even if cached")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runRender executes the pipeline and writes the rendered artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess("Render complete")
	if err := writeArtifacts(ctx, result.Artifacts, opts.Formats, input, output); err != nil {
		return err
	}
	printStats(result.Stats.VertexCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)
	return nil
}

// weightsApply reports whether any requested format draws weight labels.
func weightsApply(formats []string) bool {
	for _, f := range formats {
		if f == pipeline.FormatDOT || f == pipeline.FormatSVG {
			return true
		}
	}
	return false
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a known format extension, it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	for _, known := range formatExtensions {
		if ext == known {
			return strings.TrimSuffix(output, "."+ext)
		}
	}
	return output
}

// writeArtifacts writes each rendered format to its own file next to the
// input (or under the explicit output base path).
func writeArtifacts(ctx context.Context, artifacts map[string][]byte, formats []string, input, output string) error {
	logger := loggerFromContext(ctx)
	base := basePath(output, input)

	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			return fmt.Errorf("missing artifact for format %s", format)
		}

		path := fmt.Sprintf("%s.%s", base, formatExtensions[format])
		out, err := openOutput(path)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			out.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}

		logger.Debugf("Generated %s", path)
		printFile(path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty or "-", it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
