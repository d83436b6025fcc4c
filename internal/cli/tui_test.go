package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlorenz/wayfind/pkg/grid"
)

func testEditor(t *testing.T, text string) EditorModel {
	t.Helper()
	g, err := grid.Parse(text, grid.Options{})
	if err != nil {
		t.Fatalf("parse grid: %v", err)
	}
	return NewEditorModel(g, "", "")
}

func press(t *testing.T, m EditorModel, keys ...string) EditorModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(EditorModel)
	}
	return m
}

func TestEditorCursorMovement(t *testing.T) {
	m := testEditor(t, "...\n...\n...\n")

	m = press(t, m, "right", "down")
	if m.cursorX != 1 || m.cursorY != 1 {
		t.Errorf("cursor = (%d,%d), want (1,1)", m.cursorX, m.cursorY)
	}

	// hjkl mirrors the arrows
	m = press(t, m, "l", "j")
	if m.cursorX != 2 || m.cursorY != 2 {
		t.Errorf("cursor = (%d,%d), want (2,2)", m.cursorX, m.cursorY)
	}

	// Clamped at the border
	m = press(t, m, "right", "down")
	if m.cursorX != 2 || m.cursorY != 2 {
		t.Errorf("cursor should clamp at the border, got (%d,%d)", m.cursorX, m.cursorY)
	}
}

func TestEditorToggleWall(t *testing.T) {
	m := testEditor(t, "...\n...\n...\n")

	m = press(t, m, "right", " ")
	if !m.Grid.IsWall(1, 0) {
		t.Error("space should wall the cursor cell")
	}
	if m.al.Contains(grid.Vertex(1, 0)) {
		t.Error("walled cell should leave the graph")
	}

	m = press(t, m, " ")
	if m.Grid.IsWall(1, 0) {
		t.Error("space should reopen the cell")
	}
	if !m.al.Contains(grid.Vertex(1, 0)) {
		t.Error("reopened cell should rejoin the graph")
	}
}

func TestEditorSolveOverlay(t *testing.T) {
	m := testEditor(t, "...\n.#.\n...\n")

	m = press(t, m, "s")
	m = press(t, m, "right", "right", "down", "down", "g")
	m = press(t, m, "enter")

	if m.onPath == nil {
		t.Fatalf("solve should overlay a route, status: %s", m.status)
	}
	if !m.onPath[grid.Label(0, 0)] || !m.onPath[grid.Label(2, 2)] {
		t.Error("route should span start and goal")
	}
	if m.onPath[grid.Label(1, 1)] {
		t.Error("route must not pass through a wall")
	}
	if !strings.Contains(m.status, "hops") {
		t.Errorf("status should report the route, got %q", m.status)
	}
}

func TestEditorSolveWithoutMarkers(t *testing.T) {
	m := testEditor(t, "..\n..\n")

	m = press(t, m, "enter")
	if !m.failed {
		t.Error("solving without markers should fail")
	}
}

func TestEditorCannotWallMarker(t *testing.T) {
	m := testEditor(t, "..\n..\n")

	m = press(t, m, "s", " ")
	if m.Grid.IsWall(0, 0) {
		t.Error("start cell must not become a wall")
	}
}

func TestEditorToggleClearsRoute(t *testing.T) {
	m := testEditor(t, "...\n...\n...\n")

	m = press(t, m, "s")
	m = press(t, m, "right", "right", "g", "enter")
	if m.onPath == nil {
		t.Fatal("route should be solved")
	}

	m = press(t, m, "down", " ")
	if m.onPath != nil {
		t.Error("editing the grid should clear the stale route")
	}
}

func TestEditorView(t *testing.T) {
	m := testEditor(t, ".#\n..\n")

	view := m.View()
	if !strings.Contains(view, "wayfind edit") {
		t.Error("view should carry the title")
	}
	if !strings.Contains(view, "██") {
		t.Error("view should draw walls")
	}
}
