// Package maze - functional options for Carve and Generate.
//
// Contract:
//   - Options are functional (type Option func(*options)).
//   - Option constructors validate and panic on meaningless inputs (nil RNG,
//     nil logger). Generators themselves never panic on user input.
//   - Determinism is explicit: seeding goes through WithSeed or WithRand; no
//     package-level random state exists.
package maze

import (
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Option customizes a generation run.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*options)

// options is the resolved configuration of a single run.
type options struct {
	seed      int64
	rng       *rand.Rand
	logger    logrus.FieldLogger
	entrances bool
}

// discardLogger swallows everything; used when no logger is configured.
var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// newOptions applies opts over the defaults and materializes the RNG.
// Seed policy: seed==0 ⇒ DefaultSeed, unless WithRand supplied a source.
func newOptions(opts ...Option) options {
	o := options{
		logger:    discardLogger,
		entrances: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		if o.seed == 0 {
			o.seed = DefaultSeed
		}
		o.rng = rngFromSeed(o.seed)
	}
	return o
}

// WithSeed seeds a fresh *rand.Rand for the run. Two runs with the same seed,
// algorithm and dimensions produce identical grids.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.rng = nil
	}
}

// WithRand threads an existing RNG through the run. The caller owns its state;
// math/rand.Rand is not goroutine-safe. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
		o.seed = 0
	}
}

// WithLogger routes Debug-level run summaries to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("maze: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithoutEntrances makes Generate skip the entry-point step, leaving the
// outer boundary fully closed.
func WithoutEntrances() Option {
	return func(o *options) {
		o.entrances = false
	}
}
