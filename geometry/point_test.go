package geometry_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/stagecraft/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointOps(t *testing.T) {
	p := geometry.Point{X: 3, Y: 4}
	q := geometry.Point{X: 1, Y: 2}

	assert.Equal(t, geometry.Point{X: 2, Y: 2}, p.Sub(q))
	assert.Equal(t, geometry.Point{X: 4, Y: 6}, p.Add(q))
	assert.Equal(t, geometry.Point{X: 6, Y: 8}, p.Scale(2))
	assert.InDelta(t, 11.0, p.Dot(q), 1e-12)
	assert.InDelta(t, 25.0, p.SqNorm(), 1e-12)
	assert.InDelta(t, 5.0, p.Norm(), 1e-12)

	n := p.Normalize()
	assert.InDelta(t, 1.0, n.Norm(), 1e-9)
}

func TestSegmentPointSqDist_FootInsideSegment(t *testing.T) {
	seg := geometry.Segment{A: geometry.Point{X: 0, Y: 0}, B: geometry.Point{X: 10, Y: 0}}
	p := geometry.Point{X: 5, Y: 3}
	require.InDelta(t, 9.0, geometry.SegmentPointSqDist(seg, p), 1e-9)
}

func TestSegmentPointSqDist_FootBeforeA(t *testing.T) {
	seg := geometry.Segment{A: geometry.Point{X: 0, Y: 0}, B: geometry.Point{X: 10, Y: 0}}
	p := geometry.Point{X: -4, Y: 3}
	// Nearest point is A; distance² = 16+9 = 25.
	require.InDelta(t, 25.0, geometry.SegmentPointSqDist(seg, p), 1e-9)
}

func TestSegmentPointSqDist_FootAfterB(t *testing.T) {
	seg := geometry.Segment{A: geometry.Point{X: 0, Y: 0}, B: geometry.Point{X: 10, Y: 0}}
	p := geometry.Point{X: 14, Y: 3}
	require.InDelta(t, 25.0, geometry.SegmentPointSqDist(seg, p), 1e-9)
}

func TestSegmentIntersectsDisc_Tangency(t *testing.T) {
	seg := geometry.Segment{A: geometry.Point{X: 0, Y: 0}, B: geometry.Point{X: 10, Y: 0}}
	d := geometry.Disc{Center: geometry.Point{X: 5, Y: 3}, Radius: 3}
	// sqdist = 9 == radius^2 -> tangent, counts as intersecting.
	assert.True(t, geometry.SegmentIntersectsDisc(seg, d))

	d2 := geometry.Disc{Center: geometry.Point{X: 5, Y: 3.0001}, Radius: 3}
	assert.False(t, geometry.SegmentIntersectsDisc(seg, d2))
}

func TestSegmentIntersectsDisc_Miss(t *testing.T) {
	seg := geometry.Segment{A: geometry.Point{X: 0, Y: 0}, B: geometry.Point{X: 10, Y: 0}}
	d := geometry.Disc{Center: geometry.Point{X: 5, Y: 100}, Radius: 1}
	assert.False(t, geometry.SegmentIntersectsDisc(seg, d))
}

func TestSegmentPointSqDist_DegenerateSegment(t *testing.T) {
	seg := geometry.Segment{A: geometry.Point{X: 2, Y: 2}, B: geometry.Point{X: 2, Y: 2}}
	p := geometry.Point{X: 5, Y: 6}
	got := geometry.SegmentPointSqDist(seg, p)
	want := math.Hypot(3, 4) * math.Hypot(3, 4)
	assert.InDelta(t, want, got, 1e-9)
}
