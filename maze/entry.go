package maze

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

// OpenEntrances opens one boundary wall on each of two distinct, randomly
// chosen sides of g, at a uniformly random position along each side, and
// returns where. It works on any grid, including 1×1 (two sides of the same
// cell).
//
// Complexity: O(1).
func OpenEntrances(g *grid.Grid, rng *rand.Rand) [2]Opening {
	var out [2]Opening
	sides := shuffledDirections(rng)
	for i, side := range sides[:2] {
		at := boundaryCell(g, side, rng)
		g.Open(at.X, at.Y, side)
		out[i] = Opening{Side: side, At: at}
	}
	return out
}

// boundaryCell picks a random cell along the side of g facing d.
func boundaryCell(g *grid.Grid, d grid.Direction, rng *rand.Rand) grid.Point {
	switch d {
	case grid.North:
		return grid.Point{X: rng.Intn(g.Width()), Y: 0}
	case grid.South:
		return grid.Point{X: rng.Intn(g.Width()), Y: g.Height() - 1}
	case grid.East:
		return grid.Point{X: g.Width() - 1, Y: rng.Intn(g.Height())}
	default:
		return grid.Point{X: 0, Y: rng.Intn(g.Height())}
	}
}
