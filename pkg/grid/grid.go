package grid

import (
	"errors"
	"fmt"

	"github.com/mlorenz/wayfind/pkg/graph"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a cell coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrBadCell indicates an unrecognized rune in a text map.
	ErrBadCell = errors.New("grid: unrecognized cell")
)

// Connectivity selects neighbor connectivity: orthogonal only (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 connects each cell to its N, E, S, W neighbors.
	Conn4 Connectivity = iota
	// Conn8 additionally connects diagonal neighbors.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Options contains tunable grid parameters.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// Grid is a rectangular maze of cells with movement costs and walls.
// Coordinates are x (column) and y (row), both zero-based.
type Grid struct {
	Width, Height int

	costs   [][]float64
	walls   [][]bool
	conn    Connectivity
	offsets [][2]int
}

// New creates a fully open grid of the given dimensions with unit costs.
// Returns ErrEmptyGrid for non-positive dimensions.
func New(width, height int, opts Options) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	costs := make([][]float64, height)
	walls := make([][]bool, height)
	for y := range costs {
		costs[y] = make([]float64, width)
		walls[y] = make([]bool, width)
		for x := range costs[y] {
			costs[y][x] = 1
		}
	}

	return &Grid{
		Width:   width,
		Height:  height,
		costs:   costs,
		walls:   walls,
		conn:    opts.Conn,
		offsets: neighborOffsets(opts.Conn),
	}, nil
}

func neighborOffsets(c Connectivity) [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsWall reports whether (x,y) is a wall. Out-of-bounds cells count as walls.
func (g *Grid) IsWall(x, y int) bool {
	return !g.InBounds(x, y) || g.walls[y][x]
}

// SetWall marks (x,y) as wall or open. Returns ErrOutOfBounds when the
// coordinate lies outside the grid.
func (g *Grid) SetWall(x, y int, wall bool) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	g.walls[y][x] = wall
	return nil
}

// Cost returns the movement cost of cell (x,y); 0 for out-of-bounds cells.
func (g *Grid) Cost(x, y int) float64 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.costs[y][x]
}

// SetCost assigns the movement cost of cell (x,y).
func (g *Grid) SetCost(x, y int, cost float64) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	g.costs[y][x] = cost
	return nil
}

// Label returns the vertex label for cell (x,y), "x,y".
func Label(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// Vertex returns the graph vertex for cell (x,y).
func Vertex(x, y int) graph.Vertex[string] {
	return graph.NewVertex(Label(x, y))
}

// edgeWeight is the traversal cost between two adjacent open cells,
// the mean of their movement costs.
func (g *Grid) edgeWeight(x1, y1, x2, y2 int) float64 {
	return (g.costs[y1][x1] + g.costs[y2][x2]) / 2
}

// DefaultEdges returns the undirected edge set cell (x,y) would carry:
// one entry per currently open in-bounds neighbor.
func (g *Grid) DefaultEdges(x, y int) graph.EdgeSet[string, float64] {
	edges := make(graph.EdgeSet[string, float64])
	for _, d := range g.offsets {
		nx, ny := x+d[0], y+d[1]
		if g.IsWall(nx, ny) {
			continue
		}
		edges[Vertex(nx, ny)] = g.edgeWeight(x, y, nx, ny)
	}
	return edges
}

// Build compiles the grid into an adjacency-list graph. Every open cell
// becomes a vertex; undirected edges connect open neighbors. Walls are
// absent entirely.
func (g *Grid) Build() *graph.AdjacencyList[string, float64] {
	al := graph.New[string, float64]()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.walls[y][x] {
				continue
			}
			al.AddVertex(Vertex(x, y))
		}
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.walls[y][x] {
				continue
			}
			for _, d := range g.offsets {
				nx, ny := x+d[0], y+d[1]
				if g.IsWall(nx, ny) {
					continue
				}
				al.AddEdgeUndirected(Vertex(x, y), Vertex(nx, ny), g.edgeWeight(x, y, nx, ny))
			}
		}
	}
	return al
}

// ToggleCell flips the wall state of (x,y) in the grid and keeps an
// already-built graph consistent. Closing an open cell removes its vertex,
// which also drops the mirrored entries held by its neighbors. Reopening
// re-adds the vertex with mirrored undirected edges to the open neighbors.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) ToggleCell(al *graph.AdjacencyList[string, float64], x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}

	if g.walls[y][x] {
		g.walls[y][x] = false
		al.AddVertexWithUndirectedEdges(Vertex(x, y), g.DefaultEdges(x, y))
		return nil
	}

	g.walls[y][x] = true
	al.ToggleVertex(Vertex(x, y), nil)
	return nil
}
