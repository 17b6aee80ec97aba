package solver_test

import (
	"testing"

	"github.com/katalvlaran/stagecraft/score"
	"github.com/katalvlaran/stagecraft/solver"
	"github.com/katalvlaran/stagecraft/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProblem() *stage.Problem {
	return &stage.Problem{
		RoomWidth: 200, RoomHeight: 200,
		StageWidth: 80, StageHeight: 80, StageBottomLeft: [2]float64{20, 20},
		Musicians: []int{0, 0, 1, 1},
		Attendees: []stage.Attendee{
			{X: 0, Y: 0, Tastes: []float64{5, -2}},
			{X: 0, Y: 180, Tastes: []float64{-1, 4}},
			{X: 180, Y: 0, Tastes: []float64{3, 3}},
		},
	}
}

func TestSolve_ReturnsValidSolution(t *testing.T) {
	prob := sampleProblem()
	opts := solver.DefaultOptions()
	opts.Iterations = 3
	opts.Seed = 11

	sol, err := solver.Solve(prob, opts)
	require.NoError(t, err)

	valid, offenders := stage.ValidatePlacements(prob, &sol)
	assert.True(t, valid, "offenders: %v", offenders)

	total, ok, _, serr := score.Score(prob, &sol)
	require.NoError(t, serr)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, total, int64(0))
}

func TestSolve_Deterministic(t *testing.T) {
	prob := sampleProblem()
	opts := solver.DefaultOptions()
	opts.Iterations = 3
	opts.Seed = 99

	a, err := solver.Solve(prob, opts)
	require.NoError(t, err)
	b, err := solver.Solve(prob, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSolve_NoValidSolutionWhenRoomTooSmallForMusicians(t *testing.T) {
	prob := &stage.Problem{
		RoomWidth: 60, RoomHeight: 60,
		StageWidth: 40, StageHeight: 40, StageBottomLeft: [2]float64{10, 10},
		Musicians: make([]int, 100),
		Attendees: []stage.Attendee{{X: 0, Y: 0, Tastes: []float64{1}}},
	}
	_, err := solver.Solve(prob, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrNoValidSolution)
}

func TestSolve_RejectsInvalidProblem(t *testing.T) {
	prob := &stage.Problem{}
	_, err := solver.Solve(prob, solver.DefaultOptions())
	assert.ErrorIs(t, err, stage.ErrInvalidDimensions)
}
