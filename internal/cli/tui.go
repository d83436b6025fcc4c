package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlorenz/wayfind/pkg/graph"
	"github.com/mlorenz/wayfind/pkg/grid"
	"github.com/mlorenz/wayfind/pkg/route"
	"github.com/mlorenz/wayfind/pkg/scenario"
)

// Editor cell styles
var (
	styleCellOpen   = lipgloss.NewStyle().Foreground(colorDim)
	styleCellWall   = lipgloss.NewStyle().Foreground(colorGray)
	styleCellPath   = lipgloss.NewStyle().Foreground(colorGreen)
	styleCellMarker = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleCellCursor = lipgloss.NewStyle().Reverse(true)
	styleStatusErr  = lipgloss.NewStyle().Foreground(colorRed)
)

// EditorModel is the bubbletea model for the interactive grid editor.
// The grid and its expanded graph are kept in lockstep: toggling a cell
// updates both, so a solve never needs a full rebuild.
type EditorModel struct {
	Grid      *grid.Grid
	Path      string // file the map was loaded from
	Algorithm string

	al      *graph.AdjacencyList[string, float64]
	cursorX int
	cursorY int
	start   *[2]int
	goal    *[2]int
	onPath  map[string]bool
	cost    float64
	status  string
	failed  bool
}

// NewEditorModel creates an editor over the given grid.
func NewEditorModel(g *grid.Grid, path, algorithm string) EditorModel {
	return EditorModel{
		Grid:      g,
		Path:      path,
		Algorithm: algorithm,
		al:        g.Build(),
		status:    "place start and goal, then press enter",
	}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursorY > 0 {
			m.cursorY--
		}
	case "down", "j":
		if m.cursorY < m.Grid.Height-1 {
			m.cursorY++
		}
	case "left", "h":
		if m.cursorX > 0 {
			m.cursorX--
		}
	case "right", "l":
		if m.cursorX < m.Grid.Width-1 {
			m.cursorX++
		}

	case " ":
		m.toggle()
	case "s":
		m.place(&m.start, "start")
	case "g":
		m.place(&m.goal, "goal")
	case "c":
		m.clearRoute()
		m.status = "route cleared"
	case "w":
		m.save()
	case "enter":
		m.solve()
	}
	return m, nil
}

// toggle flips the cell under the cursor between wall and open.
func (m *EditorModel) toggle() {
	if m.markerAt(m.cursorX, m.cursorY) != "" {
		m.status = "cannot wall the start or goal"
		return
	}
	if err := m.Grid.ToggleCell(m.al, m.cursorX, m.cursorY); err != nil {
		m.status = err.Error()
		return
	}
	m.clearRoute()
	if m.Grid.IsWall(m.cursorX, m.cursorY) {
		m.status = fmt.Sprintf("walled %s", grid.Label(m.cursorX, m.cursorY))
	} else {
		m.status = fmt.Sprintf("opened %s", grid.Label(m.cursorX, m.cursorY))
	}
}

// place pins the start or goal marker to the cursor cell.
func (m *EditorModel) place(marker **[2]int, name string) {
	if m.Grid.IsWall(m.cursorX, m.cursorY) {
		m.status = fmt.Sprintf("cannot place %s on a wall", name)
		return
	}
	*marker = &[2]int{m.cursorX, m.cursorY}
	m.clearRoute()
	m.status = fmt.Sprintf("%s at %s", name, grid.Label(m.cursorX, m.cursorY))
}

// solve routes between the placed markers and overlays the path.
func (m *EditorModel) solve() {
	if m.start == nil || m.goal == nil {
		m.status = "place start (s) and goal (g) first"
		m.failed = true
		return
	}

	startV := grid.Vertex(m.start[0], m.start[1])
	goalV := grid.Vertex(m.goal[0], m.goal[1])

	var res route.Result[string]
	var err error
	if m.Algorithm == scenario.AlgorithmBFS {
		res, err = route.BFS(m.al, startV, goalV)
	} else {
		res, err = route.Dijkstra(m.al, startV, goalV)
	}
	if err != nil {
		m.clearRoute()
		m.status = err.Error()
		m.failed = true
		return
	}

	m.onPath = make(map[string]bool, len(res.Path))
	for _, v := range res.Path {
		m.onPath[v.Label] = true
	}
	m.cost = res.Cost
	m.failed = false
	m.status = fmt.Sprintf("cost %g · %d hops", res.Cost, len(res.Path)-1)
}

// save writes the current map back to its file.
func (m *EditorModel) save() {
	if m.Path == "" {
		m.status = "no file to save to"
		m.failed = true
		return
	}
	if err := os.WriteFile(m.Path, []byte(m.Grid.String()), 0o644); err != nil {
		m.status = err.Error()
		m.failed = true
		return
	}
	m.failed = false
	m.status = fmt.Sprintf("saved %s", m.Path)
}

func (m *EditorModel) clearRoute() {
	m.onPath = nil
	m.cost = 0
	m.failed = false
}

// markerAt returns "S", "G", or "" for the given cell.
func (m *EditorModel) markerAt(x, y int) string {
	if m.start != nil && m.start[0] == x && m.start[1] == y {
		return "S"
	}
	if m.goal != nil && m.goal[0] == x && m.goal[1] == y {
		return "G"
	}
	return ""
}

func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("wayfind edit"))
	if m.Path != "" {
		b.WriteString(StyleDim.Render("  " + m.Path))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑↓←→/hjkl move  ␣ toggle wall  s/g mark  ⏎ solve  c clear  w save  q quit"))
	b.WriteString("\n\n")

	for y := 0; y < m.Grid.Height; y++ {
		for x := 0; x < m.Grid.Width; x++ {
			b.WriteString(m.renderCell(x, y))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.failed {
		b.WriteString(styleStatusErr.Render(m.status))
	} else {
		b.WriteString(StyleDim.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}

// renderCell draws one grid cell, two characters wide.
func (m EditorModel) renderCell(x, y int) string {
	var cell string
	var style lipgloss.Style

	switch {
	case m.markerAt(x, y) != "":
		cell = m.markerAt(x, y) + " "
		style = styleCellMarker
	case m.Grid.IsWall(x, y):
		cell = "██"
		style = styleCellWall
	case m.onPath[grid.Label(x, y)]:
		cell = "• "
		style = styleCellPath
	default:
		cell = "· "
		if cost := m.Grid.Cost(x, y); cost > 1 {
			cell = fmt.Sprintf("%.0f ", cost)
		}
		style = styleCellOpen
	}

	if x == m.cursorX && y == m.cursorY {
		style = styleCellCursor
	}
	return style.Render(cell)
}
