package maze

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

// ellerLine carries the per-line state of Eller's algorithm: one set id per
// position of the current line, plus the counter for fresh ids.
type ellerLine struct {
	g      *grid.Grid
	scan   Scan
	sets   []int
	nextID int
	lines  int
	// sideways joins neighbors within a line, down carves into the next line.
	sideways, down grid.Direction
}

// eller carves the grid line by line keeping only one line of set labels.
//
// Per line i:
//  1. Every cell still closed (not entered from the previous line) gets a
//     fresh, globally unique set id.
//  2. Sideways pass: adjacent cells in different sets are joined by a coin
//     flip; on the final line they are always joined. Joining relabels every
//     occurrence of the left set to the right one and opens the wall.
//  3. Downward pass (skipped on the final line): for each set, in order of
//     first appearance, one uniformly chosen member opens a passage into the
//     next line; the cell below inherits the set id.
//
// The unconditional joins on the final line are what make the result
// connected; every earlier line already hands each set down at least once.
//
// Complexity: O(W×H×L) time in the worst case (L = line length, relabelling),
// O(L) extra memory.
func eller(width, height int, rng *rand.Rand, scan Scan) *grid.Grid {
	e := &ellerLine{
		g:        grid.New(width, height, true),
		scan:     scan,
		sets:     make([]int, width),
		lines:    height,
		sideways: grid.East,
		down:     grid.South,
	}
	if scan == Vertical {
		e.sets = make([]int, height)
		e.lines = width
		e.sideways, e.down = grid.South, grid.East
	}

	for i := 0; i < e.lines; i++ {
		final := i == e.lines-1
		e.assign(i)
		e.join(i, final, rng)
		if !final {
			e.descend(i, rng)
		}
	}
	return e.g
}

// at maps (position j in line i) to grid coordinates.
func (e *ellerLine) at(i, j int) (int, int) {
	if e.scan == Vertical {
		return i, j
	}
	return j, i
}

func (e *ellerLine) assign(i int) {
	for j := range e.sets {
		if x, y := e.at(i, j); e.g.IsClosed(x, y) {
			e.sets[j] = e.nextID
			e.nextID++
		}
	}
}

func (e *ellerLine) join(i int, final bool, rng *rand.Rand) {
	for j := 0; j < len(e.sets)-1; j++ {
		from, to := e.sets[j], e.sets[j+1]
		if from == to {
			continue
		}
		if !final && rng.Intn(2) == 0 {
			continue
		}
		for k, s := range e.sets {
			if s == from {
				e.sets[k] = to
			}
		}
		x, y := e.at(i, j)
		e.g.Open(x, y, e.sideways)
	}
}

func (e *ellerLine) descend(i int, rng *rand.Rand) {
	// Group positions by set, keeping the order in which sets first appear.
	order := make([]int, 0, len(e.sets))
	members := make(map[int][]int, len(e.sets))
	for j, s := range e.sets {
		if _, seen := members[s]; !seen {
			order = append(order, s)
		}
		members[s] = append(members[s], j)
	}
	for _, s := range order {
		m := members[s]
		x, y := e.at(i, m[rng.Intn(len(m))])
		e.g.Open(x, y, e.down)
	}
}
