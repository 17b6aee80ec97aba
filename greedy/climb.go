package greedy

import (
	"math"

	"github.com/katalvlaran/stagecraft/cache"
	"github.com/katalvlaran/stagecraft/geometry"
	"github.com/katalvlaran/stagecraft/score"
	"github.com/katalvlaran/stagecraft/stage"
)

// Climb runs spec.md §4.F's ruin-and-recreate search: it assembles a
// complete assignment, keeps it if it beats the best basic score seen so
// far (otherwise reverts to that best), destroys a random subset of the
// current assignment, and repeats for opts.Iterations rounds.
func Climb(prob *stage.Problem, places []geometry.Point, opts Options) (Result, error) {
	m := len(prob.Musicians)
	if len(places) < m {
		return Result{}, ErrTooFewCandidates
	}

	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	destroyCap := opts.DestroyCap
	if destroyCap <= 0 {
		destroyCap = DefaultDestroyCap
	}
	k := destroyCap
	if half := m / 2; half < k {
		k = half
	}

	rng := rngFromSeed(opts.Seed)

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

	var currentScore int64
	bestScore := int64(math.MinInt64)
	haveBest := false
	var bestPlacements []geometry.Point
	var bestVolumes []float64
	var bestMTP, bestPTM []int

	for iter := 0; iter < iterations; iter++ {
		c, err := cache.New(prob, places, musicianToPlace, placeToMusician, volumes)
		if err != nil {
			return Result{}, err
		}

		remaining := 0
		for _, p := range musicianToPlace {
			if p == cache.Unassigned {
				remaining++
			}
		}
		for ; remaining > 0; remaining-- {
			p, j, _, v, ferr := c.FindBestMatching()
			if ferr != nil {
				return Result{}, ferr
			}
			volumes[j] = v
			delta, aerr := c.AddMatching(p, j, volumes)
			if aerr != nil {
				return Result{}, aerr
			}
			currentScore += delta
		}
		musicianToPlace = c.MusicianToPlace()
		placeToMusician = c.PlaceToMusician()

		if !haveBest || currentScore > bestScore {
			haveBest = true
			bestScore = currentScore
			bestMTP = append([]int(nil), musicianToPlace...)
			bestPTM = append([]int(nil), placeToMusician...)
			bestVolumes = append([]float64(nil), volumes...)
			bestPlacements = make([]geometry.Point, m)
			for j, p := range musicianToPlace {
				bestPlacements[j] = places[p]
			}
		} else {
			musicianToPlace = append([]int(nil), bestMTP...)
			placeToMusician = append([]int(nil), bestPTM...)
			volumes = append([]float64(nil), bestVolumes...)
			currentScore = bestScore
		}

		if k > 0 {
			destroyed := sampleDistinct(m, k, rng)
			for _, midx := range destroyed {
				pidx := musicianToPlace[midx]
				if pidx == cache.Unassigned {
					continue
				}
				placeToMusician[pidx] = cache.Unassigned
				musicianToPlace[midx] = cache.Unassigned
				volumes[midx] = DefaultVolume
			}
			currentScore = scorePartial(prob, musicianToPlace, places, volumes)
		}
	}

	if !haveBest {
		return Result{}, ErrNoValidAssignment
	}
	return Result{Placements: bestPlacements, Volumes: bestVolumes, Score: bestScore}, nil
}

// scorePartial recomputes the basic score of a (possibly incomplete)
// assignment directly, without the incremental cache; used after a destroy
// step to re-seed currentScore for the next Climb iteration (spec.md §4.F).
func scorePartial(prob *stage.Problem, musicianToPlace []int, places []geometry.Point, volumes []float64) int64 {
	assigned := make([]geometry.Point, 0, len(musicianToPlace))
	for _, pidx := range musicianToPlace {
		if pidx != cache.Unassigned {
			assigned = append(assigned, places[pidx])
		}
	}

	var total int64
	for midx, pidx := range musicianToPlace {
		if pidx == cache.Unassigned {
			continue
		}
		placeSelf := places[pidx]
		kind := prob.Musicians[midx]
		for _, atd := range prob.Attendees {
			atdPos := atd.Point()
			if score.Blocked(atdPos, placeSelf, assigned, prob.Pillars) {
				continue
			}
			raw := score.ImpactRaw(atd.Tastes[kind], placeSelf, atdPos)
			total += ceilScaled(raw, volumes[midx])
		}
	}
	return total
}

// ceilScaled returns ⌈raw · volume⌉, matching score's rounding convention.
func ceilScaled(raw int64, volume float64) int64 {
	return int64(math.Ceil(float64(raw) * volume))
}
