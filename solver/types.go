package solver

import (
	"errors"

	"github.com/katalvlaran/stagecraft/greedy"
)

// ErrNoValidSolution indicates every candidate-generator variant failed,
// either because it produced too few candidates, because the climb loop
// failed, or because neither its climbed solution nor its Hungarian
// reassignment was valid.
var ErrNoValidSolution = errors.New("solver: no variant produced a valid solution")

// Options configures Solve. The zero value falls back to greedy's
// documented defaults for Iterations/DestroyCap.
type Options struct {
	// Iterations is forwarded to each worker's greedy.Options.Iterations.
	// Zero selects greedy.DefaultIterations.
	Iterations int

	// DestroyCap is forwarded to each worker's greedy.Options.DestroyCap.
	// Zero selects greedy.DefaultDestroyCap.
	DestroyCap int

	// Seed is the base RNG seed; worker variantIdx derives its own stream
	// via deriveSeed(Seed, variantIdx) so runs are reproducible per spec.md §5.
	// Zero is an ordinary fixed seed here: library code never reads the
	// clock, and the CLI replaces a zero seed flag with a clock-derived seed.
	Seed int64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Iterations: greedy.DefaultIterations,
		DestroyCap: greedy.DefaultDestroyCap,
	}
}
