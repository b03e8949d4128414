package maze

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/labyrinth/grid"
)

// growingTree keeps an ordered list of active cells. Each step selects an
// index per the policy, carves from that cell into a random unvisited
// neighbor and appends the neighbor, or retires the cell when it has none.
// Newest reproduces backtracking, Random behaves like Prim.
//
// Complexity: O(W×H) steps; retiring a cell is O(len(active)) to keep order.
func growingTree(width, height int, rng *rand.Rand, sel CellSelection) *grid.Grid {
	g := grid.New(width, height, true)
	active := []grid.Point{randomPoint(g, rng)}
	for len(active) > 0 {
		i := sel.pick(len(active), rng)
		if next, ok := carveToClosed(g, active[i], rng); ok {
			active = append(active, next)
			continue
		}
		active = slices.Delete(active, i, i+1)
	}
	return g
}

// pick returns an index into an active list of length n (n ≥ 1).
// Weighted policies roll 1..100 and use the first-named rule when the roll is
// at most the percent.
func (s CellSelection) pick(n int, rng *rand.Rand) int {
	newest := func() int { return n - 1 }
	oldest := func() int { return 0 }
	random := func() int { return rng.Intn(n) }

	first := func() bool { return rng.Intn(100)+1 <= s.percent }

	switch s.policy {
	case PolicyOldest:
		return oldest()
	case PolicyRandom:
		return random()
	case PolicyNewestOldest:
		if first() {
			return newest()
		}
		return oldest()
	case PolicyNewestRandom:
		if first() {
			return newest()
		}
		return random()
	case PolicyOldestRandom:
		if first() {
			return oldest()
		}
		return random()
	default:
		return newest()
	}
}
