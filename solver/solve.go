package solver

import (
	"math"
	"sync"

	"github.com/katalvlaran/stagecraft/candidates"
	"github.com/katalvlaran/stagecraft/geometry"
	"github.com/katalvlaran/stagecraft/greedy"
	"github.com/katalvlaran/stagecraft/hungarian"
	"github.com/katalvlaran/stagecraft/score"
	"github.com/katalvlaran/stagecraft/stage"
)

// deriveSeed mixes a base seed with a worker index into an independent
// 64-bit stream via a SplitMix64-style finalizer, so workers never share
// RNG state even when Options.Seed is zero.
func deriveSeed(base int64, worker int) int64 {
	x := uint64(base) ^ (uint64(worker) + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// workerResult is the outcome of a single candidate-generator variant:
// its best scored, valid solution, or ok=false if it produced none.
type workerResult struct {
	solution stage.Solution
	total    int64
	ok       bool
}

// Solve runs every candidates.Variants() generator on its own goroutine,
// each building an independent search over a read-only prob (§5), then
// returns the highest-scoring valid solution across all variants and
// their Hungarian reassignments.
func Solve(prob *stage.Problem, opts Options) (stage.Solution, error) {
	if err := stage.Validate(prob); err != nil {
		return stage.Solution{}, err
	}

	variants := candidates.Variants()
	results := make([]workerResult, len(variants))

	var wg sync.WaitGroup
	wg.Add(len(variants))
	for idx, gen := range variants {
		go func(idx int, gen candidates.Generator) {
			defer wg.Done()
			results[idx] = runVariant(prob, gen, opts, idx)
		}(idx, gen)
	}
	wg.Wait()

	found := false
	best := stage.Solution{}
	var bestScore int64 = math.MinInt64
	for _, r := range results {
		if !r.ok {
			continue
		}
		if !found || r.total > bestScore {
			found = true
			bestScore = r.total
			best = r.solution
		}
	}
	if !found {
		return stage.Solution{}, ErrNoValidSolution
	}
	return best, nil
}

// runVariant runs one candidate generator's climb loop, scores both the
// climbed solution and its Hungarian reassignment, and returns whichever
// of the two scores higher (or ok=false if neither is valid).
func runVariant(prob *stage.Problem, gen candidates.Generator, opts Options, idx int) workerResult {
	places, err := gen(prob)
	if err != nil {
		return workerResult{}
	}

	climbOpts := greedy.Options{
		Iterations: opts.Iterations,
		DestroyCap: opts.DestroyCap,
		Seed:       deriveSeed(opts.Seed, idx),
	}
	res, err := greedy.Climb(prob, places, climbOpts)
	if err != nil {
		return workerResult{}
	}

	candidatesSols := []stage.Solution{toSolution(res.Placements, res.Volumes)}

	if reassigned, rerr := hungarian.Reassign(prob, res.Placements, prob.Musicians); rerr == nil {
		candidatesSols = append(candidatesSols, toSolution(reassigned, res.Volumes))
	}

	var best workerResult
	for _, sol := range candidatesSols {
		total, valid, _, serr := score.Score(prob, &sol)
		if serr != nil || !valid {
			continue
		}
		if !best.ok || total > best.total {
			best = workerResult{solution: sol, total: total, ok: true}
		}
	}
	return best
}

func toSolution(placements []geometry.Point, volumes []float64) stage.Solution {
	pls := make([]stage.Placement, len(placements))
	for i, p := range placements {
		pls[i] = stage.PlacementOf(p)
	}
	return stage.Solution{Placements: pls, Volumes: append([]float64(nil), volumes...)}
}
