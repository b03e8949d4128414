package maze

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

// recursiveBacktracking is a depth-first random walk driven by an explicit
// stack, so grids with hundreds of thousands of cells never touch the call
// stack. From the top cell it carves into a random unvisited neighbor and
// pushes it; a cell with no unvisited neighbor is popped. The stack empties
// exactly when every cell has been visited.
//
// Complexity: O(W×H) time, O(W×H) stack in the worst case.
func recursiveBacktracking(width, height int, rng *rand.Rand) *grid.Grid {
	g := grid.New(width, height, true)
	stack := []grid.Point{randomPoint(g, rng)}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if next, ok := carveToClosed(g, top, rng); ok {
			stack = append(stack, next)
			continue
		}
		stack = stack[:len(stack)-1]
	}
	return g
}
