package inspect

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Report summarizes the passage structure of a grid.
type Report struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	// Passages counts open walls between two in-grid cells, each once.
	Passages int `json:"passages"`
	// Components is the number of connected regions of cells.
	Components int  `json:"components"`
	Connected  bool `json:"connected"`
	// Acyclic is true when no loop of passages exists.
	Acyclic bool `json:"acyclic"`
	// DeadEnds counts cells with exactly one open wall (boundary openings
	// included).
	DeadEnds int `json:"dead_ends"`
	// Openings counts open walls on the outer boundary.
	Openings int `json:"openings"`
}

// Perfect reports whether the grid is a spanning tree of its cells.
func (r Report) Perfect() bool {
	return r.Connected && r.Acyclic && r.Passages == r.Width*r.Height-1
}

func (r Report) String() string {
	return fmt.Sprintf("%dx%d passages=%d components=%d acyclic=%t dead_ends=%d openings=%d",
		r.Width, r.Height, r.Passages, r.Components, r.Acyclic, r.DeadEnds, r.Openings)
}

// Analyze computes the Report of g.
//
// Passages are counted from the East and South walls of each cell so every
// interior edge is seen once. Components come from a BFS over open walls;
// a graph with V vertices, E edges and C components is a forest exactly when
// E = V − C, which gives Acyclic without a second traversal.
//
// Complexity: O(W×H) time, O(W×H) memory.
func Analyze(g *grid.Grid) Report {
	w, h := g.Width(), g.Height()
	r := Report{Width: w, Height: h}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			open := 0
			for _, d := range grid.Directions {
				if g.Wall(x, y, d) {
					continue
				}
				open++
				if _, in := g.CellAt(x, y, d); !in {
					r.Openings++
				} else if d == grid.East || d == grid.South {
					r.Passages++
				}
			}
			if open == 1 {
				r.DeadEnds++
			}
		}
	}

	r.Components = len(components(g))
	r.Connected = r.Components == 1
	r.Acyclic = r.Passages == w*h-r.Components
	return r
}

// components labels every cell with a BFS over open walls and returns the
// cells of each region as row-major indices.
func components(g *grid.Grid) [][]int {
	total := g.Width() * g.Height()
	seen := make([]bool, total)
	var comps [][]int

	for start := 0; start < total; start++ {
		if seen[start] {
			continue
		}
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			p := g.Coordinate(queue[qi])
			for _, d := range grid.Directions {
				n, in := g.CellAt(p.X, p.Y, d)
				if !in || g.Wall(p.X, p.Y, d) {
					continue
				}
				if ni := g.Index(n.X, n.Y); !seen[ni] {
					seen[ni] = true
					queue = append(queue, ni)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
