// Package grid models a rectangular maze as a dense 2D array of cells with
// four wall flags each, and exposes the boundary-aware adjacency that every
// maze generator in github.com/katalvlaran/labyrinth routes through.
//
// What:
//
//   - Direction is one of North, South, East, West with an involutive Opposite.
//   - Cell stores four independent wall flags (true = passage blocked).
//   - Grid owns Width×Height cells in row-major order.
//   - Open/Close mutate one wall and mirror it on the neighbor, so the
//     wall-symmetry invariant holds after every call.
//   - CellAt is the single source of truth for bounds checks.
//
// Why:
//
//   - Generators never re-derive bounds: a neighbor either exists (CellAt
//     reports ok) or it does not.
//   - Renderers and analyzers get a read-only view (Wall, IsClosed, Cell)
//     without touching the backing slice.
//
// Coordinates:
//
//	(0,0) is the north-west corner; X grows East, Y grows South.
//
//	    N
//	  W + E
//	    S
//
// Complexity:
//
//   - New:             O(W×H) time and memory.
//   - Open/Close/Set:  O(1).
//   - CellAt/Wall:     O(1).
//   - Equal/Clone:     O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height below 1 (New panics with it).
//   - ErrOutOfBounds: a coordinate outside the grid was passed to an accessor
//     (contract violation, reported by panic).
package grid
