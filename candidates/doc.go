// Package candidates produces a finite set of stage positions for the
// search to assign musicians to. Four generators are provided — Stretch,
// Corner, Diagonal, and Compressed — each a pure function of stage
// geometry that respects the 10-unit stage-edge margin. A Generator is
// the pluggable supplier interface; callers may substitute their own.
package candidates
