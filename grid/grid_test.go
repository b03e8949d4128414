package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/grid"
)

//----------------------------------------------------------------------------//
// Direction
//----------------------------------------------------------------------------//

// TestDirection_Opposite checks that Opposite is total and involutive.
func TestDirection_Opposite(t *testing.T) {
	want := map[grid.Direction]grid.Direction{
		grid.North: grid.South,
		grid.South: grid.North,
		grid.East:  grid.West,
		grid.West:  grid.East,
	}
	for _, d := range grid.Directions {
		assert.Equal(t, want[d], d.Opposite(), "Opposite(%s)", d)
		assert.Equal(t, d, d.Opposite().Opposite(), "Opposite(Opposite(%s))", d)
	}
}

// TestDirection_Delta checks that each step lands on the CellAt neighbor.
func TestDirection_Delta(t *testing.T) {
	g := grid.New(3, 3, true)
	for _, d := range grid.Directions {
		dx, dy := d.Delta()
		p, ok := g.CellAt(1, 1, d)
		require.True(t, ok)
		assert.Equal(t, grid.Point{X: 1 + dx, Y: 1 + dy}, p, "direction %s", d)
	}
}

//----------------------------------------------------------------------------//
// New
//----------------------------------------------------------------------------//

// TestNew_InvalidDimensions verifies New panics with ErrInvalidDimensions.
func TestNew_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"ZeroWidth", 0, 5},
		{"ZeroHeight", 5, 0},
		{"Negative", -1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "New(%d,%d) did not panic", tc.width, tc.height)
				err, ok := r.(error)
				require.True(t, ok, "panic value %v is not an error", r)
				assert.True(t, errors.Is(err, grid.ErrInvalidDimensions))
			}()
			grid.New(tc.width, tc.height, true)
		})
	}
}

// TestNew_InitialState checks the closed flag is applied to every wall.
func TestNew_InitialState(t *testing.T) {
	closed := grid.New(4, 3, true)
	open := grid.New(4, 3, false)
	assert.Equal(t, 4, closed.Width())
	assert.Equal(t, 3, closed.Height())
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.True(t, closed.IsClosed(x, y))
			assert.False(t, open.IsClosed(x, y))
			for _, d := range grid.Directions {
				assert.False(t, open.Wall(x, y, d))
			}
		}
	}
}

//----------------------------------------------------------------------------//
// CellAt and bounds
//----------------------------------------------------------------------------//

// TestCellAt_Boundaries checks the four boundary exclusions on a 3×2 grid.
func TestCellAt_Boundaries(t *testing.T) {
	g := grid.New(3, 2, true)
	cases := []struct {
		x, y int
		d    grid.Direction
		ok   bool
		want grid.Point
	}{
		{0, 0, grid.North, false, grid.Point{}},
		{0, 0, grid.West, false, grid.Point{}},
		{0, 0, grid.East, true, grid.Point{X: 1, Y: 0}},
		{0, 0, grid.South, true, grid.Point{X: 0, Y: 1}},
		{2, 1, grid.East, false, grid.Point{}},
		{2, 1, grid.South, false, grid.Point{}},
		{2, 1, grid.North, true, grid.Point{X: 2, Y: 0}},
		{2, 1, grid.West, true, grid.Point{X: 1, Y: 1}},
	}
	for _, tc := range cases {
		p, ok := g.CellAt(tc.x, tc.y, tc.d)
		assert.Equal(t, tc.ok, ok, "CellAt(%d,%d,%s)", tc.x, tc.y, tc.d)
		if ok {
			assert.Equal(t, tc.want, p)
			assert.True(t, g.InBounds(p.X, p.Y))
		}
	}
}

// TestCellAt_NeverLeavesGrid sweeps every cell and direction on several shapes.
func TestCellAt_NeverLeavesGrid(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 7}, {7, 1}, {5, 4}} {
		g := grid.New(dims[0], dims[1], true)
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				for _, d := range grid.Directions {
					if p, ok := g.CellAt(x, y, d); ok {
						assert.True(t, g.InBounds(p.X, p.Y), "%v from (%d,%d) %s", p, x, y, d)
					}
				}
			}
		}
	}
}

// TestCellAt_OutOfRangeOrigin verifies the contract violation panics.
func TestCellAt_OutOfRangeOrigin(t *testing.T) {
	g := grid.New(2, 2, true)
	assert.Panics(t, func() { g.CellAt(2, 0, grid.North) })
	assert.Panics(t, func() { g.CellAt(0, -1, grid.South) })
}

//----------------------------------------------------------------------------//
// Open / Close symmetry
//----------------------------------------------------------------------------//

// TestOpenClose_Symmetry opens and closes an inner wall and checks both sides.
func TestOpenClose_Symmetry(t *testing.T) {
	g := grid.New(3, 3, true)
	g.Open(1, 1, grid.East)
	assert.False(t, g.Wall(1, 1, grid.East))
	assert.False(t, g.Wall(2, 1, grid.West))
	assert.False(t, g.IsClosed(1, 1))
	assert.False(t, g.IsClosed(2, 1))

	g.Close(2, 1, grid.West)
	assert.True(t, g.Wall(1, 1, grid.East))
	assert.True(t, g.Wall(2, 1, grid.West))
	assert.True(t, g.IsClosed(1, 1))
}

// TestOpen_Boundary checks that boundary walls open without panicking and
// touch only the cell itself.
func TestOpen_Boundary(t *testing.T) {
	g := grid.New(2, 2, true)
	require.NotPanics(t, func() {
		g.Open(0, 0, grid.North)
		g.Open(0, 0, grid.West)
		g.Open(1, 1, grid.South)
		g.Open(1, 1, grid.East)
	})
	assert.False(t, g.Wall(0, 0, grid.North))
	assert.True(t, g.Wall(1, 0, grid.North))
	assert.True(t, g.Wall(0, 1, grid.North))
}

//----------------------------------------------------------------------------//
// Equal / Clone
//----------------------------------------------------------------------------//

// TestEqualClone checks a clone is equal and independent of the original.
func TestEqualClone(t *testing.T) {
	g := grid.New(4, 4, true)
	g.Open(0, 0, grid.South)
	c := g.Clone()
	assert.True(t, g.Equal(c))

	c.Open(3, 3, grid.North)
	assert.False(t, g.Equal(c))
	assert.True(t, g.Wall(3, 3, grid.North))
	assert.False(t, g.Equal(grid.New(4, 3, true)))
}

// TestCoordinate_RoundTrip checks Index and Coordinate are inverse.
func TestCoordinate_RoundTrip(t *testing.T) {
	g := grid.New(5, 3, true)
	for i := 0; i < 15; i++ {
		p := g.Coordinate(i)
		assert.Equal(t, i, g.Index(p.X, p.Y))
	}
}
