// Package labyrinth generates perfect mazes: rectangular grids whose
// passages form a spanning tree, so any two cells are joined by exactly one
// path.
//
// 🚀 What is in the box?
//
//	• grid/    — the cell grid, wall symmetry, bounds-checked neighbors
//	• maze/    — nine strategies (Binary Tree, Sidewinder, Eller's,
//	             Recursive Backtracking, Hunt-and-Kill, Prim's, Kruskal's,
//	             Growing Tree, Recursive Division), entrances, seeding
//	• inspect/ — connectivity, loop and dead-end analysis
//	• config/  — "Name[,Param[,Percent]]" parsing, YAML/.env/MAZE_* config
//	• render/  — grayscale PNG (optionally rescaled) and ASCII art
//	• server/  — gin HTTP API with in-memory or Redis response caching
//	• cmd/mazegen, cmd/mazed — the CLI and the HTTP daemon
//
// ✨ Guarantees
//
//   - Deterministic: the same seed, algorithm and size give the same maze.
//   - Perfect: every strategy yields W·H−1 passages, connected, loop-free.
//   - Symmetric: a wall is always seen the same from both of its cells.
//
// Quick start:
//
//	m, err := maze.Generate(30, 20, maze.Kruskal{}, maze.WithSeed(42))
//	if err != nil { ... }
//	fmt.Print(render.Text(m.Grid))
package labyrinth
