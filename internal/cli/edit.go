package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mlorenz/wayfind/pkg/grid"
	"github.com/mlorenz/wayfind/pkg/pipeline"
)

// editCommand creates the edit command for the interactive grid editor.
func (c *CLI) editCommand() *cobra.Command {
	var (
		algorithm string
		diagonal  bool
	)

	cmd := &cobra.Command{
		Use:   "edit [map.txt]",
		Short: "Edit a grid map interactively and solve it live",
		Long: `Edit a grid map interactively and solve it live.

Opens the map in a full-screen editor. Move the cursor with the arrow keys
or hjkl, toggle walls with space, mark start and goal with 's' and 'g', and
press enter to solve; the route is overlaid on the grid. 'w' writes the map
back to the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if algorithm != "" {
				if err := pipeline.ValidateAlgorithm(algorithm); err != nil {
					return err
				}
			}
			return c.runEdit(args[0], algorithm, diagonal)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "routing algorithm: dijkstra (default), bfs")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "use 8-way connectivity")

	return cmd
}

// runEdit loads the map and hands control to the bubbletea editor.
func (c *CLI) runEdit(input, algorithm string, diagonal bool) error {
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

	model := NewEditorModel(g, input, algorithm)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	return nil
}
