package stage

import (
	"errors"
	"math"

	"github.com/katalvlaran/stagecraft/geometry"
)

// Sentinel errors for malformed Problem input. These are the only errors
// checked for non-finite values or nonsensical geometry; once a Problem
// passes Validate, downstream packages assume every real is finite.
var (
	// ErrInvalidDimensions indicates a non-positive room or stage dimension.
	ErrInvalidDimensions = errors.New("stage: room/stage dimensions must be positive")

	// ErrStageOutsideRoom indicates the stage rectangle is not strictly
	// contained within the room rectangle.
	ErrStageOutsideRoom = errors.New("stage: stage rectangle is not strictly inside the room")

	// ErrTasteLengthMismatch indicates attendees disagree on the length of
	// their taste vector.
	ErrTasteLengthMismatch = errors.New("stage: attendee taste vectors have inconsistent length")

	// ErrTasteKindMismatch indicates a musician's instrument kind has no
	// corresponding entry in the attendees' taste vectors.
	ErrTasteKindMismatch = errors.New("stage: musician instrument kind exceeds taste vector length")

	// ErrNegativeRadius indicates a pillar with a negative radius.
	ErrNegativeRadius = errors.New("stage: pillar radius must be non-negative")

	// ErrNonFinite indicates a NaN or infinite value was found in the input.
	ErrNonFinite = errors.New("stage: non-finite value in problem input")
)

// Attendee is a listener in the room with a per-instrument-kind taste vector.
type Attendee struct {
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Tastes []float64 `json:"tastes"`
}

// Point returns the attendee's position.
func (a Attendee) Point() geometry.Point {
	return geometry.Point{X: a.X, Y: a.Y}
}

// Pillar is a circular obstacle blocking line of sight.
type Pillar struct {
	Center [2]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

// Point returns the pillar's center.
func (p Pillar) Point() geometry.Point {
	return geometry.Point{X: p.Center[0], Y: p.Center[1]}
}

// Disc returns the pillar as a geometry.Disc.
func (p Pillar) Disc() geometry.Disc {
	return geometry.Disc{Center: p.Point(), Radius: p.Radius}
}

// Problem is the immutable input to the solver: a room, a stage strictly
// inside it, a roster of musicians (instrument-kind integers), a
// population of attendees, and any blocking pillars.
type Problem struct {
	RoomWidth        float64    `json:"room_width"`
	RoomHeight       float64    `json:"room_height"`
	StageWidth       float64    `json:"stage_width"`
	StageHeight      float64    `json:"stage_height"`
	StageBottomLeft  [2]float64 `json:"stage_bottom_left"`
	Musicians        []int      `json:"musicians"`
	Attendees        []Attendee `json:"attendees"`
	Pillars          []Pillar   `json:"pillars"`
}

// StageFrom returns the stage's lower-left corner.
func (p *Problem) StageFrom() geometry.Point {
	return geometry.Point{X: p.StageBottomLeft[0], Y: p.StageBottomLeft[1]}
}

// StageSize returns the stage width/height as a Point (X=width, Y=height).
func (p *Problem) StageSize() geometry.Point {
	return geometry.Point{X: p.StageWidth, Y: p.StageHeight}
}

// HasPillars reports whether the problem is in the "full-division" regime
// in which the play-together amplification applies.
func (p *Problem) HasPillars() bool {
	return len(p.Pillars) > 0
}

// KindCount returns the number of distinct instrument kinds, derived from
// the attendees' taste-vector length (validated to be consistent and
// large enough to cover every musician's kind by Validate).
func (p *Problem) KindCount() int {
	if len(p.Attendees) == 0 {
		return 0
	}
	return len(p.Attendees[0].Tastes)
}

// Validate checks the structural invariants of a Problem that must hold
// before any downstream package may assume finite, consistent input.
// This is the single input boundary: arithmetic past this point assumes
// every real is finite and every index in range.
func Validate(prob *Problem) error {
	if prob.RoomWidth <= 0 || prob.RoomHeight <= 0 || prob.StageWidth <= 0 || prob.StageHeight <= 0 {
		return ErrInvalidDimensions
	}
	if !allFinite(prob.RoomWidth, prob.RoomHeight, prob.StageWidth, prob.StageHeight,
		prob.StageBottomLeft[0], prob.StageBottomLeft[1]) {
		return ErrNonFinite
	}

	sx, sy := prob.StageBottomLeft[0], prob.StageBottomLeft[1]
	if sx <= 0 || sy <= 0 ||
		sx+prob.StageWidth >= prob.RoomWidth || sy+prob.StageHeight >= prob.RoomHeight {
		return ErrStageOutsideRoom
	}

	kindCount := 0
	for i, a := range prob.Attendees {
		if !allFinite(a.X, a.Y) {
			return ErrNonFinite
		}
		for _, t := range a.Tastes {
			if !allFinite(t) {
				return ErrNonFinite
			}
		}
		if i == 0 {
			kindCount = len(a.Tastes)
		} else if len(a.Tastes) != kindCount {
			return ErrTasteLengthMismatch
		}
	}

	for _, kind := range prob.Musicians {
		if kind < 0 || kind >= kindCount {
			return ErrTasteKindMismatch
		}
	}

	for _, pl := range prob.Pillars {
		if pl.Radius < 0 {
			return ErrNegativeRadius
		}
		if !allFinite(pl.Center[0], pl.Center[1], pl.Radius) {
			return ErrNonFinite
		}
	}

	return nil
}

func allFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Placement is a musician's position in the output Solution.
type Placement struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point converts the placement to a geometry.Point.
func (pl Placement) Point() geometry.Point {
	return geometry.Point{X: pl.X, Y: pl.Y}
}

// PlacementOf converts a geometry.Point to a Placement.
func PlacementOf(p geometry.Point) Placement {
	return Placement{X: p.X, Y: p.Y}
}

// Solution is the solver's output: one position and one volume per musician,
// index-aligned with Problem.Musicians.
type Solution struct {
	Placements []Placement `json:"placements"`
	Volumes    []float64   `json:"volumes"`
}

// Points returns the solution's placements as geometry.Points.
func (s *Solution) Points() []geometry.Point {
	pts := make([]geometry.Point, len(s.Placements))
	for i, pl := range s.Placements {
		pts[i] = pl.Point()
	}
	return pts
}

// StageMargin is the minimum required distance from any placement to the
// nearest stage edge.
const StageMargin = 10.0

// MinMusicianSeparation is the minimum required pairwise distance between
// any two musicians.
const MinMusicianSeparation = 10.0

// ValidatePlacements checks the two structural invariants of a Solution:
// every placement lies within the stage with the required margin, and
// every pair of placements is separated by at least MinMusicianSeparation.
// It returns whether the solution is valid and the sorted, de-duplicated
// list of offending musician indices.
func ValidatePlacements(prob *Problem, sol *Solution) (valid bool, offenders []int) {
	offenderSet := make(map[int]struct{})

	left := prob.StageBottomLeft[0]
	bottom := prob.StageBottomLeft[1]
	right := left + prob.StageWidth
	top := bottom + prob.StageHeight

	for i, pl := range sol.Placements {
		if pl.X < left+StageMargin || pl.X > right-StageMargin ||
			pl.Y < bottom+StageMargin || pl.Y > top-StageMargin {
			offenderSet[i] = struct{}{}
		}
	}

	const minSqDist = MinMusicianSeparation * MinMusicianSeparation
	for i := range sol.Placements {
		pi := sol.Placements[i].Point()
		for j := i + 1; j < len(sol.Placements); j++ {
			pj := sol.Placements[j].Point()
			if pi.SqDist(pj) < minSqDist {
				offenderSet[i] = struct{}{}
				offenderSet[j] = struct{}{}
			}
		}
	}

	if len(offenderSet) == 0 {
		return true, nil
	}

	offenders = make([]int, 0, len(offenderSet))
	for idx := range offenderSet {
		offenders = append(offenders, idx)
	}
	sortInts(offenders)
	return false, offenders
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
