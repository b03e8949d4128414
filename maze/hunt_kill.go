package maze

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

// huntAndKill walks randomly from cell to unvisited cell (kill phase). When
// the walk dead-ends it scans the grid row by row for the first unvisited cell
// bordering a visited one (hunt phase), links the two and resumes walking
// from there. A hunt that finds nothing ends the run.
//
// Complexity: O((W×H)²) worst case for the hunts, O(1) extra memory.
func huntAndKill(width, height int, rng *rand.Rand) *grid.Grid {
	g := grid.New(width, height, true)
	cur, ok := randomPoint(g, rng), true
	for ok {
		if cur, ok = carveToClosed(g, cur, rng); ok {
			continue
		}
		cur, ok = hunt(g, rng)
	}
	return g
}

// hunt finds the first closed cell, in row-major order, that has a visited
// neighbor, opens the wall between them and returns the cell. The neighbor
// direction order is shuffled once per hunt so no side is favored.
func hunt(g *grid.Grid, rng *rand.Rand) (grid.Point, bool) {
	order := shuffledDirections(rng)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !g.IsClosed(x, y) {
				continue
			}
			for _, d := range order {
				n, in := g.CellAt(x, y, d)
				if in && !g.IsClosed(n.X, n.Y) {
					g.Open(x, y, d)
					return grid.Point{X: x, Y: y}, true
				}
			}
		}
	}
	return grid.Point{}, false
}
