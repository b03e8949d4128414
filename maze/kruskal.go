package maze

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

// edge is an undirected grid edge stored as its western/northern endpoint
// plus the direction (East or South) towards the other endpoint.
type edge struct {
	from grid.Point
	dir  grid.Direction
}

// disjointSet is an array-backed union-find over row-major cell indices.
// Membership is by index only; no references between nodes exist.
type disjointSet struct {
	parent []int
}

func newDisjointSet(n int) *disjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &disjointSet{parent: parent}
}

// find returns the representative of x, halving the path on the way up.
func (s *disjointSet) find(x int) int {
	for s.parent[x] != x {
		s.parent[x] = s.parent[s.parent[x]]
		x = s.parent[x]
	}
	return x
}

// union merges the sets of a and b and reports whether they were distinct.
func (s *disjointSet) union(a, b int) bool {
	ra, rb := s.find(a), s.find(b)
	if ra == rb {
		return false
	}
	s.parent[rb] = ra
	return true
}

// kruskal enumerates every East and South edge of the grid, shuffles them and
// opens each edge whose endpoints lie in different sets, merging the sets.
// Exactly W×H-1 edges are opened.
//
// Complexity: O(E·α(V)) time with E ≈ 2·W·H, O(W×H) memory.
func kruskal(width, height int, rng *rand.Rand) *grid.Grid {
	g := grid.New(width, height, true)

	edges := make([]edge, 0, 2*width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := grid.Point{X: x, Y: y}
			if x < width-1 {
				edges = append(edges, edge{from: p, dir: grid.East})
			}
			if y < height-1 {
				edges = append(edges, edge{from: p, dir: grid.South})
			}
		}
	}
	rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	sets := newDisjointSet(width * height)
	remaining := width*height - 1
	for _, e := range edges {
		if remaining == 0 {
			break
		}
		to, _ := g.CellAt(e.from.X, e.from.Y, e.dir)
		if sets.union(g.Index(e.from.X, e.from.Y), g.Index(to.X, to.Y)) {
			g.Open(e.from.X, e.from.Y, e.dir)
			remaining--
		}
	}
	return g
}
