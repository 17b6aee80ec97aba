// Package stage defines the immutable Problem input, the Solution output,
// and the validity invariants that must hold for a Solution to be scored
// rather than rejected.
//
// Field names and JSON tags mirror the external wire format exactly
// (room_width, stage_bottom_left, tastes, ...) so a Problem or Solution
// round-trips through encoding/json without custom marshaling; reading
// and writing that JSON is a CLI-boundary concern (see cmd/stagecraft),
// not something this package does itself.
package stage
