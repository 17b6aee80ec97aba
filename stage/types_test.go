package stage_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/stagecraft/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProblem() *stage.Problem {
	return &stage.Problem{
		RoomWidth:       100,
		RoomHeight:      100,
		StageWidth:      50,
		StageHeight:     50,
		StageBottomLeft: [2]float64{10, 10},
		Musicians:       []int{0, 1},
		Attendees: []stage.Attendee{
			{X: 5, Y: 5, Tastes: []float64{1, 2}},
			{X: 90, Y: 90, Tastes: []float64{-1, 3}},
		},
		Pillars: nil,
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, stage.Validate(validProblem()))
}

func TestValidate_StageOutsideRoom(t *testing.T) {
	p := validProblem()
	p.StageWidth = 1000
	assert.ErrorIs(t, stage.Validate(p), stage.ErrStageOutsideRoom)
}

func TestValidate_NegativeDims(t *testing.T) {
	p := validProblem()
	p.RoomWidth = -1
	assert.ErrorIs(t, stage.Validate(p), stage.ErrInvalidDimensions)
}

func TestValidate_TasteLengthMismatch(t *testing.T) {
	p := validProblem()
	p.Attendees[1].Tastes = []float64{1}
	assert.ErrorIs(t, stage.Validate(p), stage.ErrTasteLengthMismatch)
}

func TestValidate_KindOutOfRange(t *testing.T) {
	p := validProblem()
	p.Musicians = []int{5}
	assert.ErrorIs(t, stage.Validate(p), stage.ErrTasteKindMismatch)
}

func TestValidate_NegativePillarRadius(t *testing.T) {
	p := validProblem()
	p.Pillars = []stage.Pillar{{Center: [2]float64{50, 50}, Radius: -1}}
	assert.ErrorIs(t, stage.Validate(p), stage.ErrNegativeRadius)
}

func TestValidatePlacements_MarginViolation(t *testing.T) {
	p := validProblem()
	sol := &stage.Solution{
		Placements: []stage.Placement{{X: 11, Y: 30}, {X: 40, Y: 30}},
		Volumes:    []float64{10, 10},
	}
	valid, offenders := stage.ValidatePlacements(p, sol)
	assert.False(t, valid)
	assert.Contains(t, offenders, 0)
}

func TestValidatePlacements_SeparationViolation(t *testing.T) {
	p := validProblem()
	sol := &stage.Solution{
		Placements: []stage.Placement{{X: 30, Y: 30}, {X: 31, Y: 30}},
		Volumes:    []float64{10, 10},
	}
	valid, offenders := stage.ValidatePlacements(p, sol)
	assert.False(t, valid)
	assert.ElementsMatch(t, []int{0, 1}, offenders)
}

func TestValidatePlacements_OK(t *testing.T) {
	p := validProblem()
	sol := &stage.Solution{
		Placements: []stage.Placement{{X: 25, Y: 25}, {X: 45, Y: 45}},
		Volumes:    []float64{10, 10},
	}
	valid, offenders := stage.ValidatePlacements(p, sol)
	assert.True(t, valid)
	assert.Empty(t, offenders)
}

func TestProblem_JSONRoundTrip(t *testing.T) {
	p := validProblem()
	b, err := json.Marshal(p)
	require.NoError(t, err)

	var got stage.Problem
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, *p, got)
}

func TestSolution_JSONRoundTrip(t *testing.T) {
	sol := &stage.Solution{
		Placements: []stage.Placement{{X: 1, Y: 2}, {X: 3, Y: 4}},
		Volumes:    []float64{10, 0},
	}
	b, err := json.Marshal(sol)
	require.NoError(t, err)

	var got stage.Solution
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, *sol, got)
}

func TestKindCount(t *testing.T) {
	p := validProblem()
	assert.Equal(t, 2, p.KindCount())
}

func TestHasPillars(t *testing.T) {
	p := validProblem()
	assert.False(t, p.HasPillars())
	p.Pillars = []stage.Pillar{{Center: [2]float64{1, 1}, Radius: 1}}
	assert.True(t, p.HasPillars())
}
