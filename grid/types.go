package grid

import "fmt"

// Direction names one side of a cell.
type Direction uint8

const (
	// North points towards y-1.
	North Direction = iota
	// South points towards y+1.
	South
	// East points towards x+1.
	East
	// West points towards x-1.
	West
)

// Directions lists every Direction in canonical order.
var Directions = [4]Direction{North, South, East, West}

// Opposite returns the direction facing d: North↔South, East↔West.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta returns the unit offset (dx, dy) of a step in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	default:
		return -1, 0
	}
}

// String returns the capitalised name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// MarshalText encodes d by name, so JSON carries "North" rather than 0.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Point is a cell coordinate. (0,0) is the north-west corner.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats p as "x,y" for logs and error messages.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Cell holds the four wall flags of one grid position.
// A true flag means the passage in that direction is blocked.
type Cell struct {
	walls [4]bool
}

// NewCell returns a cell with all four walls set to closed.
func NewCell(closed bool) Cell {
	return Cell{walls: [4]bool{closed, closed, closed, closed}}
}

// Wall reports whether the passage towards d is blocked.
// Complexity: O(1).
func (c Cell) Wall(d Direction) bool {
	return c.walls[d]
}

// Closed reports whether all four walls are set, i.e. the cell has not been
// reached by any carving yet.
func (c Cell) Closed() bool {
	return c.walls[North] && c.walls[South] && c.walls[East] && c.walls[West]
}

// set overwrites a single wall flag.
func (c *Cell) set(d Direction, closed bool) {
	c.walls[d] = closed
}
