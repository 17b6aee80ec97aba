package greedy

import (
	"errors"

	"github.com/katalvlaran/stagecraft/geometry"
)

// Sentinel errors returned by this package.
var (
	// ErrTooFewCandidates indicates fewer candidate positions than musicians
	// were supplied; no complete assignment can exist.
	ErrTooFewCandidates = errors.New("greedy: fewer candidate positions than musicians")

	// ErrNoValidAssignment indicates Climb never produced a single complete
	// assignment across all iterations (should not happen once
	// ErrTooFewCandidates has been ruled out, but is returned defensively).
	ErrNoValidAssignment = errors.New("greedy: no complete assignment produced")
)

// DefaultVolume is the starting/reset volume for a freshly unassigned
// musician slot, per spec.md §4.D/§4.E.
const DefaultVolume = 10.0

// Default search knobs for Climb, mirrored from spec.md §4.F.
const (
	// DefaultIterations is the number of destroy/rebuild rounds Climb runs.
	DefaultIterations = 100

	// DefaultDestroyCap bounds how many musicians are unassigned per round;
	// the effective count is min(DefaultDestroyCap, m/2).
	DefaultDestroyCap = 30
)

// Options configures Climb. Zero or negative Iterations/DestroyCap fall
// back to DefaultIterations/DefaultDestroyCap; DefaultOptions returns
// those defaults explicitly.
type Options struct {
	// Iterations is the number of destroy/rebuild rounds. Default: 100.
	Iterations int

	// DestroyCap bounds musicians unassigned per round (further capped at
	// m/2). Default: 30.
	DestroyCap int

	// Seed controls the deterministic RNG driving destroy-step sampling.
	// Default: 0 (mapped internally to a fixed non-zero stream).
	Seed int64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		DestroyCap: DefaultDestroyCap,
	}
}

// Result is the outcome of Assemble or Climb: a complete placement, its
// per-musician volumes, and the basic (unamplified, unvolumed-twice) score
// the cache accumulated while building it.
type Result struct {
	Placements []geometry.Point
	Volumes    []float64
	Score      int64
}
