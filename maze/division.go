package maze

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

// region is a rectangle of cells still to be divided.
type region struct {
	x, y, w, h int
}

// recursiveDivision is the subtractive strategy. It starts from an open
// field enclosed by the outer perimeter and repeatedly bisects regions with a
// wall that has exactly one gap. A region whose width or height is 1 is a
// finished corridor. Regions live on an explicit stack.
//
// Each split of a region with k cells on the line adds k-1 walls and keeps
// the field connected, so the result is a spanning tree.
//
// Complexity: O(W×H·log(W×H)) time, O(log(W×H)) expected stack.
func recursiveDivision(width, height int, rng *rand.Rand) *grid.Grid {
	g := grid.New(width, height, false)
	closePerimeter(g)

	stack := []region{{x: 0, y: 0, w: width, h: height}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.w < 2 || r.h < 2 {
			continue
		}

		if rng.Intn(2) == 0 {
			// Horizontal wall below row line.
			line := r.y + rng.Intn(r.h-1)
			for x := r.x; x < r.x+r.w; x++ {
				g.Close(x, line, grid.South)
			}
			g.Open(r.x+rng.Intn(r.w), line, grid.South)
			stack = append(stack,
				region{x: r.x, y: r.y, w: r.w, h: line - r.y + 1},
				region{x: r.x, y: line + 1, w: r.w, h: r.y + r.h - line - 1},
			)
			continue
		}

		// Vertical wall east of column line.
		line := r.x + rng.Intn(r.w-1)
		for y := r.y; y < r.y+r.h; y++ {
			g.Close(line, y, grid.East)
		}
		g.Open(line, r.y+rng.Intn(r.h), grid.East)
		stack = append(stack,
			region{x: r.x, y: r.y, w: line - r.x + 1, h: r.h},
			region{x: line + 1, y: r.y, w: r.x + r.w - line - 1, h: r.h},
		)
	}
	return g
}

// closePerimeter raises every wall on the outer boundary of g.
func closePerimeter(g *grid.Grid) {
	for x := 0; x < g.Width(); x++ {
		g.Close(x, 0, grid.North)
		g.Close(x, g.Height()-1, grid.South)
	}
	for y := 0; y < g.Height(); y++ {
		g.Close(0, y, grid.West)
		g.Close(g.Width()-1, y, grid.East)
	}
}
