package geometry

import "math"

// Point is a Cartesian point in the room/stage plane. Y increases upward.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// SqNorm returns ‖p‖².
func (p Point) SqNorm() float64 {
	return p.Dot(p)
}

// Norm returns ‖p‖.
func (p Point) Norm() float64 {
	return math.Sqrt(p.SqNorm())
}

// Normalize returns p / ‖p‖. The caller must ensure p is non-zero;
// geometrically every segment used by the solver connects two distinct
// points (an attendee and a musician at least 10 units from any stage
// edge), so a zero-length segment never arises from valid input.
func (p Point) Normalize() Point {
	return p.Scale(1.0 / p.Norm())
}

// SqDist returns the squared distance ‖p-q‖².
func (p Point) SqDist(q Point) float64 {
	return p.Sub(q).SqNorm()
}

// Segment is a line segment from A to B.
type Segment struct {
	A, B Point
}

// Disc is a circle with Center and Radius.
type Disc struct {
	Center Point
	Radius float64
}

// SegmentPointSqDist returns the squared Euclidean distance from p to the
// segment seg. If the foot of the perpendicular from p onto the line AB
// falls outside the segment, the squared distance to the nearer endpoint
// is returned instead.
func SegmentPointSqDist(seg Segment, p Point) float64 {
	d := seg.B.Sub(seg.A)
	ap := p.Sub(seg.A)

	// Degenerate segment: A==B, distance is just to that point.
	dd := d.SqNorm()
	if dd == 0 {
		return ap.SqNorm()
	}

	t := ap.Dot(d) / dd
	if t <= 0 {
		return ap.SqNorm()
	}
	bp := p.Sub(seg.B)
	if t >= 1 {
		return bp.SqNorm()
	}

	foot := seg.A.Add(d.Scale(t))
	return p.Sub(foot).SqNorm()
}

// SegmentIntersectsDisc reports whether seg intersects d. Tangency counts
// as intersection.
func SegmentIntersectsDisc(seg Segment, d Disc) bool {
	return SegmentPointSqDist(seg, d.Center) <= d.Radius*d.Radius
}
