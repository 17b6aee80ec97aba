package greedy_test

import (
	"testing"

	"github.com/katalvlaran/stagecraft/candidates"
	"github.com/katalvlaran/stagecraft/greedy"
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
			{X: 0, Y: 150, Tastes: []float64{-1, 4}},
			{X: 150, Y: 0, Tastes: []float64{3, 3}},
		},
	}
}

func TestAssemble_ProducesCompleteAssignment(t *testing.T) {
	prob := sampleProblem()
	places, err := candidates.Stretch(prob)
	require.NoError(t, err)

	res, err := greedy.Assemble(prob, places)
	require.NoError(t, err)
	assert.Len(t, res.Placements, len(prob.Musicians))
	assert.Len(t, res.Volumes, len(prob.Musicians))
	for _, v := range res.Volumes {
		assert.Contains(t, []float64{0.0, 10.0}, v)
	}
}

func TestAssemble_TooFewCandidates(t *testing.T) {
	prob := sampleProblem()
	_, err := greedy.Assemble(prob, nil)
	assert.ErrorIs(t, err, greedy.ErrTooFewCandidates)
}

func TestClimb_NeverWorsensBestScore(t *testing.T) {
	prob := sampleProblem()
	places, err := candidates.Stretch(prob)
	require.NoError(t, err)

	opts := greedy.DefaultOptions()
	opts.Iterations = 5
	opts.Seed = 42

	res, err := greedy.Climb(prob, places, opts)
	require.NoError(t, err)
	assert.Len(t, res.Placements, len(prob.Musicians))

	baseline, err := greedy.Assemble(prob, places)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Score, baseline.Score)
}

func TestClimb_Deterministic(t *testing.T) {
	prob := sampleProblem()
	places, err := candidates.Stretch(prob)
	require.NoError(t, err)

	opts := greedy.DefaultOptions()
	opts.Iterations = 5
	opts.Seed = 7

	a, err := greedy.Climb(prob, places, opts)
	require.NoError(t, err)
	b, err := greedy.Climb(prob, places, opts)
	require.NoError(t, err)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Placements, b.Placements)
}

func TestClimb_TooFewCandidates(t *testing.T) {
	prob := sampleProblem()
	_, err := greedy.Climb(prob, nil, greedy.DefaultOptions())
	assert.ErrorIs(t, err, greedy.ErrTooFewCandidates)
}
