package maze

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/grid"
)

// frontier is a set of points supporting O(1) insert, O(1) uniform random
// removal and deterministic order (a slice plus a position index; Go map
// iteration order would break seed determinism).
type frontier struct {
	items []grid.Point
	pos   map[grid.Point]int
}

func newFrontier(capacity int) *frontier {
	return &frontier{
		items: make([]grid.Point, 0, capacity),
		pos:   make(map[grid.Point]int, capacity),
	}
}

func (f *frontier) Len() int { return len(f.items) }

// Add inserts p unless it is already present.
func (f *frontier) Add(p grid.Point) {
	if _, ok := f.pos[p]; ok {
		return
	}
	f.pos[p] = len(f.items)
	f.items = append(f.items, p)
}

// PopRandom removes and returns a uniformly chosen element by swapping it
// with the last one.
func (f *frontier) PopRandom(rng *rand.Rand) grid.Point {
	i := rng.Intn(len(f.items))
	p := f.items[i]
	last := len(f.items) - 1
	f.items[i] = f.items[last]
	f.pos[f.items[i]] = i
	f.items = f.items[:last]
	delete(f.pos, p)
	return p
}

// prim keeps a frontier of candidate cells and a done set of cells already
// attached to the tree. Each step removes a random frontier cell, looks at
// its neighbors in random order, queues every neighbor not yet done, and
// carves into the first done neighbor only, so exactly one passage attaches
// each cell (the seed cell attaches to nothing).
//
// Complexity: O(W×H) expected time, O(W×H) memory.
func prim(width, height int, rng *rand.Rand) *grid.Grid {
	g := grid.New(width, height, true)
	done := mapset.New[grid.Point]()
	open := newFrontier(width + height)
	open.Add(randomPoint(g, rng))

	for open.Len() > 0 {
		p := open.PopRandom(rng)
		attached := false
		for _, d := range shuffledDirections(rng) {
			n, in := g.CellAt(p.X, p.Y, d)
			if !in {
				continue
			}
			if !done.Has(n) {
				open.Add(n)
			} else if !attached {
				g.Open(p.X, p.Y, d)
				attached = true
			}
		}
		done.Put(p)
	}
	return g
}
