package score

import (
	"math"

	"github.com/katalvlaran/stagecraft/geometry"
	"github.com/katalvlaran/stagecraft/stage"
)

// blockDiscRadius is the radius of the disc centered on an already-placed
// musician that blocks the line of sight to other musicians.
const blockDiscRadius = 5.0

// ImpactRaw returns the unscaled per-(attendee, musician) contribution:
// ⌈10⁶ · taste / ‖attendee - musician‖²⌉. The ceiling is taken after the
// division, on a signed real (taste may be negative).
func ImpactRaw(taste float64, musicianPos, attendeePos geometry.Point) int64 {
	dsq := attendeePos.SqDist(musicianPos)
	return ceilToInt64(1e6 * taste / dsq)
}

// ceilToInt64 rounds x up to the nearest integer and returns it as int64.
func ceilToInt64(x float64) int64 {
	return int64(math.Ceil(x))
}

// Blocked reports whether the line of sight between attendeePos and
// musicianPos is blocked: either by a pillar disc, or by the
// blockDiscRadius disc of any other musician in otherMusicians.
func Blocked(attendeePos, musicianPos geometry.Point, otherMusicians []geometry.Point, pillars []stage.Pillar) bool {
	seg := geometry.Segment{A: attendeePos, B: musicianPos}

	for _, pl := range pillars {
		if geometry.SegmentIntersectsDisc(seg, pl.Disc()) {
			return true
		}
	}

	for _, other := range otherMusicians {
		if other == musicianPos {
			continue
		}
		d := geometry.Disc{Center: other, Radius: blockDiscRadius}
		if geometry.SegmentIntersectsDisc(seg, d) {
			return true
		}
	}

	return false
}

// PlayTogetherScalar returns the amplification factor for musician i:
// 1 when hasPillars is false (pillars absent ⇒ no amplification, per
// spec.md's boundary case), otherwise
// 1 + Σ_{j≠i, kind(j)=kind(i)} 1/‖p_i - p_j‖.
func PlayTogetherScalar(i int, kinds []int, placements []geometry.Point, hasPillars bool) float64 {
	if !hasPillars {
		return 1.0
	}

	scalar := 1.0
	for j := range placements {
		if j == i || kinds[j] != kinds[i] {
			continue
		}
		d := placements[i].Sub(placements[j]).Norm()
		if d > 0 {
			scalar += 1.0 / d
		}
	}
	return scalar
}

// OptimalVolume returns the binary volume policy of spec.md §4.B/§9: 10
// when the musician's unscaled contribution sum is positive, 0 otherwise.
func OptimalVolume(unscaledContribution int64) float64 {
	if unscaledContribution > 0 {
		return 10.0
	}
	return 0.0
}

// Score validates sol against prob's invariants and, if valid, computes
// the total happiness:
//
//	Σ_attendees Σ_musicians ⌈v_i · scalar_i · contribution(A,i)⌉
//
// where contribution(A,i) is ImpactRaw(A, kind_i, p_i) if the line of
// sight is unblocked, else 0. An invalid solution scores 0 and reports
// the offending musician indices instead of being scored.
//
// Score does not mutate prob or sol and is deterministic.
func Score(prob *stage.Problem, sol *stage.Solution) (total int64, valid bool, offenders []int, err error) {
	if err = stage.Validate(prob); err != nil {
		return 0, false, nil, err
	}
	if len(sol.Placements) != len(prob.Musicians) || len(sol.Volumes) != len(prob.Musicians) {
		return 0, false, nil, nil
	}

	valid, offenders = stage.ValidatePlacements(prob, sol)
	if !valid {
		return 0, false, offenders, nil
	}

	placements := sol.Points()
	hasPillars := prob.HasPillars()

	scalars := make([]float64, len(placements))
	for i := range placements {
		scalars[i] = PlayTogetherScalar(i, prob.Musicians, placements, hasPillars)
	}

	var sum int64
	for _, attendee := range prob.Attendees {
		attendeePos := attendee.Point()
		for i, place := range placements {
			if Blocked(attendeePos, place, placements, prob.Pillars) {
				continue
			}
			kind := prob.Musicians[i]
			raw := ImpactRaw(attendee.Tastes[kind], place, attendeePos)
			scaled := sol.Volumes[i] * scalars[i] * float64(raw)
			sum += ceilToInt64(scaled)
		}
	}

	return sum, true, nil, nil
}
