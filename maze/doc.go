// Package maze generates perfect mazes: rectangular grids whose open passages
// form a spanning tree, so every cell is reachable from every other cell along
// exactly one path.
//
// What & Why
//
//   - A perfect maze over a W×H grid has exactly W·H−1 passages, is connected
//     and contains no loops. Nine strategies reach that shape with very
//     different textures (long corridors, many short dead ends, diagonal
//     bias) which is why they are all offered.
//
// Algorithms Provided
//
//   - BinaryTree{Bias}: one of two bias directions per cell. O(W×H).
//   - Sidewinder{Scan}: runs along a line, one exit per run. O(W×H).
//   - Eller{Scan}: line-by-line set tracking, O(L) memory for line length L.
//   - RecursiveBacktracking: depth-first walk on an explicit stack.
//   - HuntAndKill: random walk, then row-major hunt for the next start.
//   - Prim: random frontier removal. O(W×H) expected.
//   - Kruskal: shuffled edges joined through an index-based union-find.
//   - GrowingTree{Selection}: Newest/Oldest/Random and weighted mixes.
//   - RecursiveDivision: subtractive, bisects an open field with walls.
//
// Entry points
//
//   - Carve(w, h, alg, opts...) returns the bare spanning tree, outer
//     boundary closed.
//   - Generate(w, h, alg, opts...) also opens two entrances on distinct sides
//     (see OpenEntrances) and reports the effective seed.
//
// Determinism
//
//   - One *rand.Rand threads through a whole run. WithSeed(s) makes the run
//     reproducible; seed 0 means DefaultSeed. No package-level random state.
//
// Errors
//
//   - ErrInvalidDimensions: width or height below 1.
//   - ErrNilAlgorithm: alg is nil.
//
// Option constructors (WithRand(nil), WithLogger(nil), NewestOldest(101), ...)
// panic: those are programming errors, not input errors.
package maze
