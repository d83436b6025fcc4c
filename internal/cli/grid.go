package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlorenz/wayfind/pkg/graphio"
	"github.com/mlorenz/wayfind/pkg/grid"
)

// gridCommand creates the grid command for inspecting and exporting grid maps.
func (c *CLI) gridCommand() *cobra.Command {
	var (
		output   string
		diagonal bool
	)

	cmd := &cobra.Command{
		Use:   "grid [map.txt]",
		Short: "Inspect a grid map and export its graph",
		Long: `Inspect a grid map and export its graph.

Grid maps are ASCII text: '#' marks a wall, '.' an open cell of cost 1, and
the digits 1-9 open cells with higher traversal costs. Open neighbors are
connected by undirected edges weighted with the mean of the two cell costs.

With --output the expanded graph is exported as JSON, ready for
'wayfind solve' and 'wayfind render'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGrid(args[0], output, diagonal)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "export the graph as JSON (use - for stdout)")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "use 8-way connectivity")

	return cmd
}

// runGrid parses the map, prints its statistics, and optionally exports it.
func (c *CLI) runGrid(input, output string, diagonal bool) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	conn := grid.Conn4
	if diagonal {
		conn = grid.Conn8
	}
	g, err := grid.Parse(string(data), grid.Options{Conn: conn})
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	prog := newProgress(c.Logger)
	al := g.Build()
	prog.done(fmt.Sprintf("Expanded %dx%d grid into %d vertices", g.Width, g.Height, al.Len()))

	printKeyValue("size", fmt.Sprintf("%dx%d", g.Width, g.Height))
	printKeyValue("open cells", fmt.Sprintf("%d", al.Len()))
	printKeyValue("edges", fmt.Sprintf("%d", al.EdgeCount()))

	if output == "" {
		printNewline()
		printNextStep("Solve", fmt.Sprintf("wayfind solve %s --start 0,0 --goal %d,%d", input, g.Width-1, g.Height-1))
		return nil
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := graphio.WriteJSON(al, out); err != nil {
		return fmt.Errorf("export graph: %w", err)
	}
	if output != "-" {
		printSuccess("Exported graph")
		printFile(output)
	}
	return nil
}
