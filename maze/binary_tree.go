package maze

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

// binaryTree sweeps the grid row by row, left to right, and from every cell
// opens exactly one of the two bias directions that stay inside the grid.
// The corner opposite the bias has no candidate and opens nothing.
// Cells are independent, so no loops can form and no region is cut off.
//
// Complexity: O(W×H) time, O(1) extra memory.
func binaryTree(width, height int, rng *rand.Rand, bias Bias) *grid.Grid {
	g := grid.New(width, height, true)
	var candidates [2]grid.Direction
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := 0
			for _, d := range [2]grid.Direction{bias.vertical(), bias.horizontal()} {
				if _, ok := g.CellAt(x, y, d); ok {
					candidates[n] = d
					n++
				}
			}
			if n == 0 {
				continue
			}
			g.Open(x, y, candidates[rng.Intn(n)])
		}
	}
	return g
}
