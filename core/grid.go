package core

import (
	"fmt"
	"strings"
)

// Point addresses a grid cell by row (top is 0) and column (left is 0)
type Point struct {
	Row, Col int
}

// CellReader is the read-only view of a grid handed to renderers
type CellReader interface {
	Rows() int
	Cols() int
	Get(row, col int) Color
}

// Grid is a fixed-size row-major store of cell colors
// Out-of-range reads return Empty and out-of-range writes are ignored
type Grid struct {
	rows  int
	cols  int
	cells []Color
}

// NewGrid creates an empty grid; negative dimensions are treated as zero
func NewGrid(rows, cols int) *Grid {
	rows = max(rows, 0)
	cols = max(cols, 0)
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Color, rows*cols),
	}
}

// Rows returns the grid height
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the grid width
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) addresses a cell of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the color at (row, col), Empty when out of bounds
func (g *Grid) Get(row, col int) Color {
	if !g.InBounds(row, col) {
		return Empty
	}
	return g.cells[row*g.cols+col]
}

// Set stores c at (row, col); no-op when out of bounds
func (g *Grid) Set(row, col int, c Color) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row*g.cols+col] = c
}

// IsEmpty reports whether (row, col) holds no piece; out of bounds counts as empty
func (g *Grid) IsEmpty(row, col int) bool {
	return g.Get(row, col) == Empty
}

// CountNonEmpty returns the number of occupied cells
func (g *Grid) CountNonEmpty() int {
	n := 0
	for _, c := range g.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Points returns the occupied coordinates in row-major order
func (g *Grid) Points() []Point {
	var pts []Point
	for i, c := range g.cells {
		if c != Empty {
			pts = append(pts, Point{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return pts
}

// Clear empties every cell
func (g *Grid) Clear() {
	clear(g.cells)
}

// Clone returns an independent copy
func (g *Grid) Clone() *Grid {
	cells := make([]Color, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether both grids have the same shape and content
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders one line per row using color glyphs
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.cells[r*g.cols+c].Rune())
		}
		if r < g.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseGrid builds a grid from the String format
// Blank lines and surrounding whitespace are ignored; all rows must have equal width
func ParseGrid(s string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return NewGrid(0, 0), nil
	}

	width := len([]rune(lines[0]))
	g := NewGrid(len(lines), width)
	for r, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d: width %d, expected %d", r, len(runes), width)
		}
		for c, ch := range runes {
			color, ok := ColorFromRune(ch)
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown glyph %q", r, c, ch)
			}
			g.cells[r*width+c] = color
		}
	}
	return g, nil
}

// MustParseGrid is ParseGrid for fixtures known to be valid
func MustParseGrid(s string) *Grid {
	g, err := ParseGrid(s)
	if err != nil {
		panic(err)
	}
	return g
}
