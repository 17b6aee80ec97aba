// Package score implements the objective function and validity predicate
// for a Solution: per-attendee raw impact, line-of-sight blocking by
// pillars and other musicians, the play-together amplification scalar,
// per-musician volume, and the final ceiling-summed total.
//
// Score is deterministic and never mutates its inputs (see the
// round-trip property in spec.md §8).
package score
