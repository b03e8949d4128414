package grid

import "fmt"

// Grid is a dense Width×Height array of cells stored in row-major order.
// It exclusively owns its cells; accessors hand out copies.
type Grid struct {
	width, height int
	cells         []Cell
}

// New allocates a width×height grid with every wall set to closed.
// Carving generators start from closed=true, subtractive ones from false.
//
// New panics with ErrInvalidDimensions if width < 1 or height < 1; the check
// happens before any allocation. Callers that take dimensions from users
// validate them first (see maze.Carve).
// Complexity: O(W×H) time and memory.
func New(width, height int, closed bool) *Grid {
	if width < 1 || height < 1 {
		panic(fmt.Errorf("grid.New(%d, %d): %w", width, height, ErrInvalidDimensions))
	}
	cells := make([]Cell, width*height)
	c := NewCell(closed)
	for i := range cells {
		cells[i] = c
	}

	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to its row-major index y*Width + x.
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// mustIndex returns the index of (x,y) or panics with ErrOutOfBounds.
func (g *Grid) mustIndex(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Errorf("(%d,%d) in %dx%d grid: %w", x, y, g.width, g.height, ErrOutOfBounds))
	}
	return g.Index(x, y)
}

// CellAt returns the neighbor of (x,y) in direction d. ok is false when d
// points outside the grid: x=0 and West, y=0 and North, x=Width-1 and East,
// y=Height-1 and South.
//
// Passing an (x,y) that is itself outside the grid is a bug in the caller and
// panics with ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) CellAt(x, y int, d Direction) (p Point, ok bool) {
	g.mustIndex(x, y)
	switch d {
	case North:
		if y > 0 {
			return Point{x, y - 1}, true
		}
	case South:
		if y < g.height-1 {
			return Point{x, y + 1}, true
		}
	case East:
		if x < g.width-1 {
			return Point{x + 1, y}, true
		}
	case West:
		if x > 0 {
			return Point{x - 1, y}, true
		}
	}
	return Point{}, false
}

// Open removes the wall of (x,y) towards d and the matching wall of the
// neighbor, if there is one. At the boundary only (x,y) changes.
func (g *Grid) Open(x, y int, d Direction) {
	g.Set(x, y, d, false)
}

// Close raises the wall of (x,y) towards d on both sides.
func (g *Grid) Close(x, y int, d Direction) {
	g.Set(x, y, d, true)
}

// Set writes the wall state of (x,y) towards d and mirrors it onto the
// neighbor's opposite wall, keeping both flags equal.
// Complexity: O(1).
func (g *Grid) Set(x, y int, d Direction, closed bool) {
	g.cells[g.mustIndex(x, y)].set(d, closed)
	if n, ok := g.CellAt(x, y, d); ok {
		g.cells[g.Index(n.X, n.Y)].set(d.Opposite(), closed)
	}
}

// Cell returns a copy of the cell at (x,y).
func (g *Grid) Cell(x, y int) Cell {
	return g.cells[g.mustIndex(x, y)]
}

// Wall reports whether the passage from (x,y) towards d is blocked.
func (g *Grid) Wall(x, y int, d Direction) bool {
	return g.cells[g.mustIndex(x, y)].Wall(d)
}

// IsClosed reports whether all four walls of (x,y) are set.
func (g *Grid) IsClosed(x, y int) bool {
	return g.cells[g.mustIndex(x, y)].Closed()
}

// Equal reports whether g and other have the same dimensions and identical
// wall flags everywhere.
// Complexity: O(W×H).
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return &Grid{width: g.width, height: g.height, cells: cells}
}
