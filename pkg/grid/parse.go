package grid

import (
	"fmt"
	"strings"
)

// Parse reads a text map into a Grid. Each line is a row; '#' marks a wall,
// '.' an open cell of cost 1, and '1'-'9' open cells with that cost.
// Leading/trailing blank lines are ignored; rows must be equally long.
func Parse(text string, opts Options) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len([]rune(rows[0]))
	g, err := New(width, len(rows), opts)
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, y, len(runes), width)
		}
		for x, r := range runes {
			switch {
			case r == '#':
				g.walls[y][x] = true
			case r == '.':
				// cost 1 default
			case r >= '1' && r <= '9':
				g.costs[y][x] = float64(r - '0')
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, r, x, y)
			}
		}
	}

	return g, nil
}

// String renders the grid back as a text map, the inverse of [Parse].
// Cells with non-integer or out-of-range costs render as '.'.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			switch c := g.costs[y][x]; {
			case g.walls[y][x]:
				b.WriteByte('#')
			case c == float64(int(c)) && c >= 2 && c <= 9:
				b.WriteByte(byte('0' + int(c)))
			default:
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
