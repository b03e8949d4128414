package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/grid"
)

// Carve runs the strategy selected by alg on a fresh width×height grid and
// returns the result without entry points: a spanning tree whose outer
// boundary is fully closed.
//
// Errors:
//   - ErrInvalidDimensions if width < 1 or height < 1 (checked before allocation).
//   - ErrNilAlgorithm if alg is nil.
func Carve(width, height int, alg Algorithm, opts ...Option) (*grid.Grid, error) {
	if err := validate(width, height, alg); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	return run(width, height, alg, o), nil
}

// Generate runs the selected strategy and then opens two entrances on
// distinct sides, unless WithoutEntrances is given. The same RNG drives
// both steps, so a seed reproduces the whole maze.
func Generate(width, height int, alg Algorithm, opts ...Option) (*Maze, error) {
	if err := validate(width, height, alg); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	m := &Maze{
		Grid:      run(width, height, alg, o),
		Algorithm: alg,
		Seed:      o.seed,
	}
	if o.entrances {
		e := OpenEntrances(m.Grid, o.rng)
		m.Entrances = e[:]
		o.logger.WithFields(logrus.Fields{
			"first":  fmt.Sprintf("%s@%s", e[0].Side, e[0].At),
			"second": fmt.Sprintf("%s@%s", e[1].Side, e[1].At),
		}).Debug("maze: entrances opened")
	}
	return m, nil
}

func validate(width, height int, alg Algorithm) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("maze: %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if alg == nil {
		return ErrNilAlgorithm
	}
	return nil
}

// run dispatches to the strategy and logs a summary.
func run(width, height int, alg Algorithm, o options) *grid.Grid {
	start := time.Now()
	g := dispatch(width, height, alg, o.rng)
	o.logger.WithFields(logrus.Fields{
		"algorithm": alg.String(),
		"width":     width,
		"height":    height,
		"seed":      o.seed,
		"elapsed":   time.Since(start),
	}).Debug("maze: carved")
	return g
}

func dispatch(width, height int, alg Algorithm, rng *rand.Rand) *grid.Grid {
	switch a := alg.(type) {
	case BinaryTree:
		return binaryTree(width, height, rng, a.Bias)
	case Eller:
		return eller(width, height, rng, a.Scan)
	case RecursiveBacktracking:
		return recursiveBacktracking(width, height, rng)
	case HuntAndKill:
		return huntAndKill(width, height, rng)
	case Prim:
		return prim(width, height, rng)
	case GrowingTree:
		return growingTree(width, height, rng, a.Selection)
	case Sidewinder:
		return sidewinder(width, height, rng, a.Scan)
	case Kruskal:
		return kruskal(width, height, rng)
	case RecursiveDivision:
		return recursiveDivision(width, height, rng)
	}
	panic(fmt.Sprintf("maze: unhandled algorithm %T", alg))
}
