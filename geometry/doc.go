// Package geometry provides the 2-D primitives shared by the placement
// solver: points, segments, discs, and the segment-to-disc intersection
// test used throughout scoring and the impact cache to decide whether a
// pillar or another musician blocks the line of sight between an
// attendee and a musician.
//
// All operations are pure functions of their inputs; there is no shared
// mutable state and nothing here allocates beyond its return value.
package geometry
