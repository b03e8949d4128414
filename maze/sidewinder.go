package maze

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

// sidewinder processes one line at a time. Along a line it extends the
// current run with a passage to the next cell; when a coin flip says stop,
// or the line ends, one uniformly chosen member of the run opens a passage
// back into the previous line and a new run starts at the next cell.
// The first line has no previous line and is carved as a single corridor.
//
// Horizontal scans rows (runs go East, exits go North); Vertical scans
// columns (runs go South, exits go West).
//
// Complexity: O(W×H) time, O(1) extra memory.
func sidewinder(width, height int, rng *rand.Rand, scan Scan) *grid.Grid {
	g := grid.New(width, height, true)
	along, lines, side, exit := width, height, grid.East, grid.North
	if scan == Vertical {
		along, lines, side, exit = height, width, grid.South, grid.West
	}
	// at maps (position along the line, line index) to grid coordinates.
	at := func(i, j int) (int, int) {
		if scan == Vertical {
			return j, i
		}
		return i, j
	}

	for j := 0; j < lines; j++ {
		runStart := 0
		for i := 0; i < along; i++ {
			last := i == along-1
			if j == 0 || (!last && rng.Intn(2) == 0) {
				if !last {
					x, y := at(i, j)
					g.Open(x, y, side)
				}
				continue
			}
			x, y := at(runStart+rng.Intn(i-runStart+1), j)
			g.Open(x, y, exit)
			runStart = i + 1
		}
	}
	return g
}
