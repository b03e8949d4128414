// Package maze - RNG utilities shared by every strategy.
//
// Goals:
//   - Determinism: same seed ⇒ identical grids across platforms.
//   - Encapsulation: a single RNG per run, passed explicitly; no time-based
//     sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A run owns its RNG.
package maze

import (
	"iter"
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

// DefaultSeed is used when callers pass seed==0 or no seed at all.
const DefaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// directions returns a lazy random permutation of the four directions.
// Each range over the sequence draws a fresh permutation (an inside-out
// Fisher–Yates step per yielded element), so a consumer that stops early
// spends only the draws it used.
//
// Complexity: O(1) per yielded direction.
func directions(rng *rand.Rand) iter.Seq[grid.Direction] {
	return func(yield func(grid.Direction) bool) {
		dirs := grid.Directions
		for i := range dirs {
			j := i + rng.Intn(len(dirs)-i)
			dirs[i], dirs[j] = dirs[j], dirs[i]
			if !yield(dirs[i]) {
				return
			}
		}
	}
}

// shuffledDirections materializes one full permutation, for callers that
// reuse the same order many times (one hunt pass, one Prim step).
func shuffledDirections(rng *rand.Rand) [4]grid.Direction {
	var out [4]grid.Direction
	i := 0
	for d := range directions(rng) {
		out[i] = d
		i++
	}
	return out
}

// randomPoint returns a uniformly chosen cell of g.
func randomPoint(g *grid.Grid, rng *rand.Rand) grid.Point {
	return grid.Point{X: rng.Intn(g.Width()), Y: rng.Intn(g.Height())}
}

// carveToClosed opens a passage from p to a random closed (unvisited)
// neighbor and returns that neighbor. ok is false when every in-bounds
// neighbor has already been visited.
func carveToClosed(g *grid.Grid, p grid.Point, rng *rand.Rand) (next grid.Point, ok bool) {
	for d := range directions(rng) {
		n, in := g.CellAt(p.X, p.Y, d)
		if in && g.IsClosed(n.X, n.Y) {
			g.Open(p.X, p.Y, d)
			return n, true
		}
	}
	return grid.Point{}, false
}
