package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors returned by Carve and Generate.
var (
	// ErrInvalidDimensions indicates width or height below 1.
	ErrInvalidDimensions = errors.New("maze: width and height must be at least 1")
	// ErrNilAlgorithm indicates that no algorithm was supplied.
	ErrNilAlgorithm = errors.New("maze: nil algorithm")
)

// Algorithm selects one of the nine generation strategies together with its
// parameters. The set of implementations is closed: only the types declared
// in this package satisfy it, so Generate never meets an unknown variant.
type Algorithm interface {
	fmt.Stringer
	sealed()
}

// Bias picks the diagonal the Binary Tree algorithm leans towards.
type Bias uint8

const (
	Northeast Bias = iota
	Northwest
	Southeast
	Southwest
)

// Biases lists every Bias in canonical order.
var Biases = [4]Bias{Northeast, Northwest, Southeast, Southwest}

func (b Bias) String() string {
	switch b {
	case Northeast:
		return "Northeast"
	case Northwest:
		return "Northwest"
	case Southeast:
		return "Southeast"
	case Southwest:
		return "Southwest"
	}
	return fmt.Sprintf("Bias(%d)", uint8(b))
}

// vertical returns the north/south direction carved under bias b.
func (b Bias) vertical() grid.Direction {
	if b == Northeast || b == Northwest {
		return grid.North
	}
	return grid.South
}

// horizontal returns the east/west direction carved under bias b.
func (b Bias) horizontal() grid.Direction {
	if b == Northeast || b == Southeast {
		return grid.East
	}
	return grid.West
}

// Scan is the line orientation for Eller's and Sidewinder.
// Horizontal processes rows top to bottom; Vertical processes columns left to right.
type Scan uint8

const (
	Horizontal Scan = iota
	Vertical
)

// Scans lists both orientations.
var Scans = [2]Scan{Horizontal, Vertical}

func (s Scan) String() string {
	if s == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// Policy is the rule Growing Tree uses to pick the next active cell.
type Policy uint8

const (
	PolicyNewest Policy = iota
	PolicyOldest
	PolicyRandom
	PolicyNewestOldest
	PolicyNewestRandom
	PolicyOldestRandom
)

func (p Policy) String() string {
	switch p {
	case PolicyNewest:
		return "Newest"
	case PolicyOldest:
		return "Oldest"
	case PolicyRandom:
		return "Random"
	case PolicyNewestOldest:
		return "NewestOldest"
	case PolicyNewestRandom:
		return "NewestRandom"
	case PolicyOldestRandom:
		return "OldestRandom"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// Weighted reports whether the policy mixes two strategies by percentage.
func (p Policy) Weighted() bool {
	return p >= PolicyNewestOldest && p <= PolicyOldestRandom
}

// CellSelection is a Growing Tree policy plus, for weighted policies, the
// percentage in [0,100] of picks that use the first-named strategy.
// The zero value selects Newest.
type CellSelection struct {
	policy  Policy
	percent int
}

// Newest always picks the most recently added cell (depth-first behavior).
func Newest() CellSelection { return CellSelection{policy: PolicyNewest} }

// Oldest always picks the least recently added cell.
func Oldest() CellSelection { return CellSelection{policy: PolicyOldest} }

// Random picks any active cell uniformly (Prim-like behavior).
func Random() CellSelection { return CellSelection{policy: PolicyRandom} }

// NewestOldest picks Newest p% of the time and Oldest otherwise.
// Panics if p is outside [0,100].
func NewestOldest(p int) CellSelection { return weighted(PolicyNewestOldest, p) }

// NewestRandom picks Newest p% of the time and Random otherwise.
// Panics if p is outside [0,100].
func NewestRandom(p int) CellSelection { return weighted(PolicyNewestRandom, p) }

// OldestRandom picks Oldest p% of the time and Random otherwise.
// Panics if p is outside [0,100].
func OldestRandom(p int) CellSelection { return weighted(PolicyOldestRandom, p) }

func weighted(policy Policy, p int) CellSelection {
	if p < 0 || p > 100 {
		panic(fmt.Sprintf("maze: %s(%d): percent must be within [0,100]", policy, p))
	}
	return CellSelection{policy: policy, percent: p}
}

// Policy returns the selection rule.
func (s CellSelection) Policy() Policy { return s.policy }

// Percent returns the weight of the first-named strategy; 0 for unweighted policies.
func (s CellSelection) Percent() int { return s.percent }

// String returns "Policy" or "Policy,percent".
func (s CellSelection) String() string {
	if s.policy.Weighted() {
		return fmt.Sprintf("%s,%d", s.policy, s.percent)
	}
	return s.policy.String()
}

// The nine algorithm variants. String returns the canonical text form that
// config.ParseAlgorithm accepts.
type (
	// BinaryTree carves one of two bias directions from every cell.
	BinaryTree struct{ Bias Bias }
	// Eller carves line by line tracking set membership per line.
	Eller struct{ Scan Scan }
	// RecursiveBacktracking is a depth-first random walk with an explicit stack.
	RecursiveBacktracking struct{}
	// HuntAndKill alternates random walks with row-major hunts.
	HuntAndKill struct{}
	// Prim grows a tree from a random frontier.
	Prim struct{}
	// GrowingTree generalises backtracking and Prim through a selection policy.
	GrowingTree struct{ Selection CellSelection }
	// Sidewinder carves runs along a line and exits each run once.
	Sidewinder struct{ Scan Scan }
	// Kruskal joins randomly ordered edges with a union-find.
	Kruskal struct{}
	// RecursiveDivision bisects an open field with walls.
	RecursiveDivision struct{}
)

func (BinaryTree) sealed()            {}
func (Eller) sealed()                 {}
func (RecursiveBacktracking) sealed() {}
func (HuntAndKill) sealed()           {}
func (Prim) sealed()                  {}
func (GrowingTree) sealed()           {}
func (Sidewinder) sealed()            {}
func (Kruskal) sealed()               {}
func (RecursiveDivision) sealed()     {}

func (a BinaryTree) String() string          { return "BinaryTree," + a.Bias.String() }
func (a Eller) String() string               { return "EllersAlgorithm," + a.Scan.String() }
func (RecursiveBacktracking) String() string { return "RecursiveBacktracking" }
func (HuntAndKill) String() string           { return "HuntKillAlgorithm" }
func (Prim) String() string                  { return "PrimsAlgorithm" }
func (a GrowingTree) String() string         { return "GrowingTree," + a.Selection.String() }
func (a Sidewinder) String() string          { return "SidewinderAlgorithm," + a.Scan.String() }
func (Kruskal) String() string               { return "KruskalsAlgorithm" }
func (RecursiveDivision) String() string     { return "RecursiveDivision" }

// Opening is an entrance punched through the outer boundary: the wall on
// side Side of the cell At.
type Opening struct {
	Side grid.Direction `json:"side"`
	At   grid.Point     `json:"at"`
}

// Maze is a finished generation run.
type Maze struct {
	Grid      *grid.Grid
	Algorithm Algorithm
	// Seed is the effective seed, or 0 when the caller supplied its own RNG.
	Seed      int64
	Entrances []Opening
}
