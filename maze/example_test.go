package maze_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/inspect"
	"github.com/katalvlaran/labyrinth/maze"
)

// ExampleGenerate builds a seeded Kruskal maze and checks its shape.
func ExampleGenerate() {
	m, err := maze.Generate(8, 5, maze.Kruskal{}, maze.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	r := inspect.Analyze(m.Grid)
	fmt.Printf("%s %dx%d passages=%d perfect=%t openings=%d\n",
		m.Algorithm, m.Grid.Width(), m.Grid.Height(), r.Passages, r.Perfect(), r.Openings)
	// Output: KruskalsAlgorithm 8x5 passages=39 perfect=true openings=2
}

// ExampleCarve shows that a one-row Binary Tree maze is a straight corridor.
func ExampleCarve() {
	g, err := maze.Carve(4, 1, maze.BinaryTree{Bias: maze.Northeast})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for x := 0; x < g.Width(); x++ {
		fmt.Print(g.Wall(x, 0, grid.East), " ")
	}
	fmt.Println()
	// Output: false false false true
}
