package greedy

import (
	"github.com/katalvlaran/stagecraft/cache"
	"github.com/katalvlaran/stagecraft/geometry"
	"github.com/katalvlaran/stagecraft/stage"
)

// Assemble builds a complete assignment from scratch by repeatedly asking
// the impact cache for the single best remaining (position, musician) pair
// and committing it, per spec.md §4.E. places must contain at least
// len(prob.Musicians) candidates.
func Assemble(prob *stage.Problem, places []geometry.Point) (Result, error) {
	m := len(prob.Musicians)
	if len(places) < m {
		return Result{}, ErrTooFewCandidates
	}

	musicianToPlace := make([]int, m)
	placeToMusician := make([]int, len(places))
	volumes := make([]float64, m)
	for i := range musicianToPlace {
		musicianToPlace[i] = cache.Unassigned
		volumes[i] = DefaultVolume
	}
	for i := range placeToMusician {
		placeToMusician[i] = cache.Unassigned
	}

	c, err := cache.New(prob, places, musicianToPlace, placeToMusician, volumes)
	if err != nil {
		return Result{}, err
	}

	var total int64
	for remaining := m; remaining > 0; remaining-- {
		p, j, _, v, ferr := c.FindBestMatching()
		if ferr != nil {
			return Result{}, ferr
		}
		volumes[j] = v
		delta, aerr := c.AddMatching(p, j, volumes)
		if aerr != nil {
			return Result{}, aerr
		}
		total += delta
	}

	musicianToPlace = c.MusicianToPlace()
	placements := make([]geometry.Point, m)
	for j, p := range musicianToPlace {
		placements[j] = places[p]
	}

	return Result{Placements: placements, Volumes: volumes, Score: total}, nil
}
