package inspect_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/inspect"
)

// ExampleAnalyze inspects an L-shaped passage through three cells of a 2×2 grid.
func ExampleAnalyze() {
	g := grid.New(2, 2, true)
	g.Open(0, 0, grid.East)
	g.Open(1, 0, grid.South)

	r := inspect.Analyze(g)
	fmt.Println(r.Components, r.Connected, r.Acyclic)

	g.Open(0, 0, grid.South)
	r = inspect.Analyze(g)
	fmt.Println(r.Passages, r.Perfect())
	// Output:
	// 2 false true
	// 3 true
}
