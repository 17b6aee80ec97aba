package hungarian

import (
	"github.com/katalvlaran/stagecraft/geometry"
	"github.com/katalvlaran/stagecraft/score"
	"github.com/katalvlaran/stagecraft/stage"
)

// Reassign keeps the positions in placements fixed and finds the optimal
// permutation of musicians-to-positions (spec.md §4.G): for every position
// it computes the raw contribution each instrument kind would earn there
// from attendees that can actually see that position, then solves the
// assignment problem that maximizes the total contribution. It never moves
// a position, only which musician occupies it.
func Reassign(prob *stage.Problem, placements []geometry.Point, kinds []int) ([]geometry.Point, error) {
	m := len(prob.Musicians)
	if len(placements) != m || len(kinds) != m {
		return nil, ErrDimensionMismatch
	}

	contrib := make([][]int64, m)
	for i := range contrib {
		contrib[i] = make([]int64, m)
	}

	for placementIdx, place := range placements {
		var impactAttendees []stage.Attendee
		for _, atd := range prob.Attendees {
			if score.Blocked(atd.Point(), place, placements, prob.Pillars) {
				continue
			}
			impactAttendees = append(impactAttendees, atd)
		}
		for musicianIdx, kind := range kinds {
			var sum int64
			for _, atd := range impactAttendees {
				sum += score.ImpactRaw(atd.Tastes[kind], place, atd.Point())
			}
			contrib[musicianIdx][placementIdx] = sum
		}
	}

	var max int64
	for _, row := range contrib {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}

	cost := make([][]float64, m)
	for i, row := range contrib {
		cost[i] = make([]float64, m)
		for j, v := range row {
			cost[i][j] = float64(max - v)
		}
	}

	rowToCol, err := SolveAssignment(cost)
	if err != nil {
		return nil, err
	}

	result := make([]geometry.Point, m)
	for musicianIdx, placementIdx := range rowToCol {
		result[musicianIdx] = placements[placementIdx]
	}
	return result, nil
}
