package cache

import (
	"errors"
	"math"

	"github.com/katalvlaran/stagecraft/geometry"
	"github.com/katalvlaran/stagecraft/score"
	"github.com/katalvlaran/stagecraft/stage"
)

// Unassigned is the sentinel value used in place of Rust's Option<usize>
// for musician-to-place / place-to-musician lookups.
const Unassigned = -1

// blockDiscRadius mirrors score's blocking-disc radius for musicians.
const blockDiscRadius = 5.0

// Sentinel errors for cache construction and mutation.
var (
	// ErrDimensionMismatch indicates the supplied slices disagree in length
	// with the problem's musician/candidate counts.
	ErrDimensionMismatch = errors.New("cache: dimension mismatch between problem and supplied slices")

	// ErrAlreadyAssigned indicates AddMatching was called on a position or
	// musician slot that is already committed.
	ErrAlreadyAssigned = errors.New("cache: position or musician already assigned")

	// ErrNoUnassignedSlot indicates FindBestMatching was called with no
	// unassigned position or musician remaining.
	ErrNoUnassignedSlot = errors.New("cache: no unassigned position/musician remains")
)

// Cache is the incremental impact table of spec.md §4.D.
type Cache struct {
	prob   *stage.Problem
	places []geometry.Point

	visible            [][]bool  // visible[place][attendee]
	impactDiff         [][]int64 // impactDiff[place][musician]
	impactDiffBlocking [][]int64 // impactDiffBlocking[place][musician]

	musicianToPlace []int // musicianToPlace[musician] = place or Unassigned
	placeToMusician []int // placeToMusician[place] = musician or Unassigned
}

// New builds a Cache from prob, a candidate set places, an initial
// (possibly empty or partial) assignment, and initial volumes.
// musicianToPlace and placeToMusician are copied, not retained.
func New(prob *stage.Problem, places []geometry.Point, musicianToPlace, placeToMusician []int, volumes []float64) (*Cache, error) {
	m := len(prob.Musicians)
	n := len(prob.Attendees)
	p := len(places)

	if len(musicianToPlace) != m || len(placeToMusician) != p || len(volumes) != m {
		return nil, ErrDimensionMismatch
	}

	c := &Cache{
		prob:            prob,
		places:          append([]geometry.Point(nil), places...),
		musicianToPlace: append([]int(nil), musicianToPlace...),
		placeToMusician: append([]int(nil), placeToMusician...),
	}

	c.visible = make([][]bool, p)
	c.impactDiff = make([][]int64, p)
	c.impactDiffBlocking = make([][]int64, p)
	for i := range c.places {
		c.visible[i] = make([]bool, n)
		c.impactDiff[i] = make([]int64, m)
		c.impactDiffBlocking[i] = make([]int64, m)
	}

	c.initVisibilityAndDirect()
	c.initBlocking(volumes)

	return c, nil
}

// initVisibilityAndDirect computes initial visibility against pillars and
// already-placed musicians, and the direct impactDiff sums over visible
// attendees (spec.md §4.D construction, steps 1-3).
func (c *Cache) initVisibilityAndDirect() {
	for i, place := range c.places {
		for j := range c.prob.Attendees {
			atd := c.prob.Attendees[j]
			atdPos := atd.Point()

			vis := visibleThroughPillars(atdPos, place, c.prob.Pillars)
			if vis {
				for pidx := range c.places {
					if pidx == i {
						continue
					}
					if c.placeToMusician[pidx] == Unassigned {
						continue
					}
					if blockedByMusicianAt(atdPos, place, c.places[pidx]) {
						vis = false
						break
					}
				}
			}
			c.visible[i][j] = vis
			if !vis {
				continue
			}
			for k, kind := range c.prob.Musicians {
				c.impactDiff[i][k] += score.ImpactRaw(atd.Tastes[kind], place, atdPos)
			}
		}
	}
}

// initBlocking computes the initial impactDiffBlocking contributions
// already-placed musicians impose on unassigned candidates (spec.md
// §4.D construction, final bullet).
func (c *Cache) initBlocking(volumes []float64) {
	for k, kind := range c.prob.Musicians {
		pidx := c.musicianToPlace[k]
		if pidx == Unassigned {
			continue
		}
		placeSelf := c.places[pidx]
		for j := range c.prob.Attendees {
			if !c.visible[pidx][j] {
				continue
			}
			atd := c.prob.Attendees[j]
			atdPos := atd.Point()
			raw := score.ImpactRaw(atd.Tastes[kind], placeSelf, atdPos)
			contrib := ceilScaled(raw, volumes[k])
			for i := range c.places {
				if c.placeToMusician[i] != Unassigned {
					continue
				}
				if blockedByMusicianAt(atdPos, placeSelf, c.places[i]) {
					c.impactDiffBlocking[i][k] -= contrib
				}
			}
		}
	}
}

// visibleThroughPillars reports whether the segment attendeePos->candidatePos
// is unobstructed by any pillar.
func visibleThroughPillars(attendeePos, candidatePos geometry.Point, pillars []stage.Pillar) bool {
	seg := geometry.Segment{A: attendeePos, B: candidatePos}
	for _, pl := range pillars {
		if geometry.SegmentIntersectsDisc(seg, pl.Disc()) {
			return false
		}
	}
	return true
}

// blockedByMusicianAt reports whether the segment attendeePos->candidatePos
// crosses the blockDiscRadius disc centered on blockerPos.
func blockedByMusicianAt(attendeePos, candidatePos, blockerPos geometry.Point) bool {
	seg := geometry.Segment{A: attendeePos, B: candidatePos}
	d := geometry.Disc{Center: blockerPos, Radius: blockDiscRadius}
	return geometry.SegmentIntersectsDisc(seg, d)
}

// ceilScaled returns ⌈raw · volume⌉.
func ceilScaled(raw int64, volume float64) int64 {
	return int64(math.Ceil(float64(raw) * volume))
}

// Visible reports whether attendee would currently see a musician placed
// at place. Exposed for tests asserting the monotonicity invariant.
func (c *Cache) Visible(place, attendee int) bool {
	return c.visible[place][attendee]
}

// MusicianToPlace returns a copy of the current musician->place assignment.
func (c *Cache) MusicianToPlace() []int {
	return append([]int(nil), c.musicianToPlace...)
}

// PlaceToMusician returns a copy of the current place->musician assignment.
func (c *Cache) PlaceToMusician() []int {
	return append([]int(nil), c.placeToMusician...)
}

// ImpactDiff returns the current impactDiff entry for (place, musician).
// Exposed for tests asserting the exact-recomputation invariant.
func (c *Cache) ImpactDiff(place, musician int) int64 {
	return c.impactDiff[place][musician]
}

// FindBestMatching scans all unassigned (position, musician) pairs and
// returns the one with the highest candidate key, per spec.md §4.D:
//
//	bestImpact = max over unassigned j of impactDiff[i][j]
//	penalty    = Σ_k impactDiffBlocking[i][k]
//	key        = 10*bestImpact + penalty, volume=10   if bestImpact >= 0
//	           = penalty,                 volume=0    otherwise
//
// Ties are broken by first-encountered in ascending (place, musician)
// scan order.
func (c *Cache) FindBestMatching() (place, musician int, key int64, volume float64, err error) {
	found := false
	var bestKey int64
	var bestPlace, bestMusician int
	var bestVolume float64

	for i := range c.places {
		if c.placeToMusician[i] != Unassigned {
			continue
		}

		bestImpact := int64(math.MinInt64)
		bestJ := -1
		for j := range c.prob.Musicians {
			if c.musicianToPlace[j] != Unassigned {
				continue
			}
			if c.impactDiff[i][j] > bestImpact {
				bestImpact = c.impactDiff[i][j]
				bestJ = j
			}
		}
		if bestJ == -1 {
			continue
		}

		var penalty int64
		for _, v := range c.impactDiffBlocking[i] {
			penalty += v
		}

		var key int64
		var vol float64
		if bestImpact >= 0 {
			key = 10*bestImpact + penalty
			vol = 10.0
		} else {
			key = penalty
			vol = 0.0
		}

		if !found || key > bestKey {
			found = true
			bestKey = key
			bestPlace = i
			bestMusician = bestJ
			bestVolume = vol
		}
	}

	if !found {
		return 0, 0, 0, 0, ErrNoUnassignedSlot
	}
	return bestPlace, bestMusician, bestKey, bestVolume, nil
}

// AddMatching commits the (place, musician) pairing and returns the net
// change in basic score, per spec.md §4.D rules 1-4.
func (c *Cache) AddMatching(pidx, midx int, volumes []float64) (int64, error) {
	if c.placeToMusician[pidx] != Unassigned || c.musicianToPlace[midx] != Unassigned {
		return 0, ErrAlreadyAssigned
	}

	c.musicianToPlace[midx] = pidx
	c.placeToMusician[pidx] = midx

	direct := c.updateDirect(pidx, midx, volumes)
	block := c.updateBlock(pidx, midx, volumes)
	return direct + block, nil
}

// updateDirect implements spec.md §4.D rule 2: for every still-unassigned
// position, flip visibility and subtract direct impact for attendees now
// blocked by the newly placed musician's disc.
func (c *Cache) updateDirect(pidx, midx int, volumes []float64) int64 {
	placeSelf := c.places[pidx]

	for i, placeAnother := range c.places {
		if c.placeToMusician[i] != Unassigned {
			continue
		}
		for j := range c.prob.Attendees {
			if !c.visible[i][j] {
				continue
			}
			atd := c.prob.Attendees[j]
			atdPos := atd.Point()
			if !blockedByMusicianAt(atdPos, placeAnother, placeSelf) {
				continue
			}
			c.visible[i][j] = false
			for k, kind := range c.prob.Musicians {
				c.impactDiff[i][k] -= score.ImpactRaw(atd.Tastes[kind], placeAnother, atdPos)
			}
		}
	}

	return ceilScaled(c.impactDiff[pidx][midx], volumes[midx])
}

// updateBlock implements spec.md §4.D rule 3-4: propagate blocking
// penalties/credits to every other candidate, and return the already-
// accumulated penalty of committing to pidx.
func (c *Cache) updateBlock(pidx, midx int, volumes []float64) int64 {
	var diff int64
	for k := range c.prob.Musicians {
		if c.musicianToPlace[k] != Unassigned {
			diff += c.impactDiffBlocking[pidx][k]
		}
	}

	for i := range c.places {
		if i == pidx {
			continue
		}
		if midxAnother := c.placeToMusician[i]; midxAnother != Unassigned {
			c.updateBlockDec(pidx, i, midxAnother, volumes)
		} else {
			c.updateBlockInc(pidx, midx, i, volumes)
		}
	}

	return diff
}

// updateBlockDec handles an already-assigned candidate i: attendees that
// see its musician only via a line now crossed by the newly placed
// musician's disc stop seeing it, and every remaining unassigned
// candidate whose disc also crosses that line picks up the credit.
func (c *Cache) updateBlockDec(pidx, i, midxAnother int, volumes []float64) {
	placeSelf := c.places[pidx]
	placeAnother := c.places[i]
	kind := c.prob.Musicians[midxAnother]

	for j := range c.prob.Attendees {
		if !c.visible[i][j] {
			continue
		}
		atd := c.prob.Attendees[j]
		atdPos := atd.Point()
		if !blockedByMusicianAt(atdPos, placeAnother, placeSelf) {
			continue
		}
		c.visible[i][j] = false

		raw := score.ImpactRaw(atd.Tastes[kind], placeAnother, atdPos)
		contrib := ceilScaled(raw, volumes[midxAnother])
		for ii := range c.places {
			if c.placeToMusician[ii] != Unassigned {
				continue
			}
			if blockedByMusicianAt(atdPos, placeAnother, c.places[ii]) {
				c.impactDiffBlocking[ii][midxAnother] += contrib
			}
		}
	}
}

// updateBlockInc handles a still-unassigned candidate i: it no longer
// threatens to block the newly fixed musician, so its recorded
// destructive potential toward midx is reduced.
func (c *Cache) updateBlockInc(pidx, midx, i int, volumes []float64) {
	placeSelf := c.places[pidx]
	placeAnother := c.places[i]
	kindSelf := c.prob.Musicians[midx]

	for j := range c.prob.Attendees {
		if !c.visible[pidx][j] {
			continue
		}
		atd := c.prob.Attendees[j]
		atdPos := atd.Point()
		if !blockedByMusicianAt(atdPos, placeSelf, placeAnother) {
			continue
		}
		raw := score.ImpactRaw(atd.Tastes[kindSelf], placeSelf, atdPos)
		c.impactDiffBlocking[i][midx] -= ceilScaled(raw, volumes[midx])
	}
}
