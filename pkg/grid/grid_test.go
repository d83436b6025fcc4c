package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlorenz/wayfind/pkg/graph"
)

func TestNewValidation(t *testing.T) {
	_, err := New(0, 3, Options{})
	require.ErrorIs(t, err, ErrEmptyGrid)

	_, err = New(3, -1, Options{})
	require.ErrorIs(t, err, ErrEmptyGrid)

	g, err := New(2, 3, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, 1.0, g.Cost(1, 2))
	assert.False(t, g.IsWall(1, 2))
	assert.True(t, g.IsWall(2, 0), "out-of-bounds cells count as walls")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{name: "Empty", text: "\n  \n", wantErr: ErrEmptyGrid},
		{name: "Ragged", text: "..\n...", wantErr: ErrRaggedGrid},
		{name: "BadRune", text: "..\n.x", wantErr: ErrBadCell},
		{name: "Valid", text: "#.\n.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(tt.text, Options{})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, g.IsWall(0, 0))
			assert.False(t, g.IsWall(1, 0))
			assert.Equal(t, 3.0, g.Cost(1, 1))
		})
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	const text = "#..\n.5#\n..."
	g, err := Parse(text, Options{})
	require.NoError(t, err)
	assert.Equal(t, text, g.String())
}

func TestBuildConn4(t *testing.T) {
	// ..
	// .#
	g, err := Parse("..\n.#", Options{Conn: Conn4})
	require.NoError(t, err)

	al := g.Build()
	assert.Equal(t, 3, al.Len(), "walls must not become vertices")
	assert.False(t, al.Contains(Vertex(1, 1)))

	// Open cells form an L; both edges are mirrored.
	n, ok := al.Neighbors(Vertex(0, 0))
	require.True(t, ok)
	assert.Len(t, n, 2)
	assert.Contains(t, n, Vertex(1, 0))
	assert.Contains(t, n, Vertex(0, 1))

	n, ok = al.Neighbors(Vertex(1, 0))
	require.True(t, ok)
	assert.Len(t, n, 1, "Conn4 must not link (1,0) diagonally to (0,1)")
	assert.Contains(t, n, Vertex(0, 0))
}

func TestBuildConn8AddsDiagonals(t *testing.T) {
	g, err := Parse("..\n..", Options{Conn: Conn8})
	require.NoError(t, err)

	al := g.Build()
	n, ok := al.Neighbors(Vertex(0, 0))
	require.True(t, ok)
	assert.Len(t, n, 3)
	assert.Contains(t, n, Vertex(1, 1))
}

func TestBuildEdgeWeights(t *testing.T) {
	g, err := Parse(".3", Options{})
	require.NoError(t, err)

	al := g.Build()
	n, ok := al.Neighbors(Vertex(0, 0))
	require.True(t, ok)
	assert.Equal(t, 2.0, n[Vertex(1, 0)], "edge weight is the mean of the two cell costs")
}

func TestToggleCell(t *testing.T) {
	g, err := Parse("...\n...", Options{Conn: Conn4})
	require.NoError(t, err)
	al := g.Build()

	center := Vertex(1, 0)
	require.True(t, al.Contains(center))

	// Close: vertex and all mirrored entries disappear.
	require.NoError(t, g.ToggleCell(al, 1, 0))
	assert.True(t, g.IsWall(1, 0))
	assert.False(t, al.Contains(center))
	for _, nb := range []graph.Vertex[string]{Vertex(0, 0), Vertex(2, 0), Vertex(1, 1)} {
		edges, ok := al.Neighbors(nb)
		require.True(t, ok)
		assert.NotContains(t, edges, center, "neighbor %v keeps a stale edge", nb)
	}

	// Reopen: vertex returns with mirrored edges on both sides.
	require.NoError(t, g.ToggleCell(al, 1, 0))
	assert.False(t, g.IsWall(1, 0))
	edges, ok := al.Neighbors(center)
	require.True(t, ok)
	assert.Len(t, edges, 3)
	back, _ := al.Neighbors(Vertex(0, 0))
	assert.Contains(t, back, center)

	require.ErrorIs(t, g.ToggleCell(al, 9, 9), ErrOutOfBounds)
}

func TestDefaultEdgesSkipsWalls(t *testing.T) {
	g, err := Parse(".#.\n...", Options{Conn: Conn4})
	require.NoError(t, err)

	edges := g.DefaultEdges(1, 0) // the wall cell itself
	assert.Len(t, edges, 3, "left, right, and below are open; above is out of bounds")
	assert.NotContains(t, edges, Vertex(1, -1))
}
