package hungarian

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrNonSquare indicates SolveAssignment was given a non-square cost matrix.
	ErrNonSquare = errors.New("hungarian: cost matrix must be square")

	// ErrEmptyMatrix indicates SolveAssignment was given a 0x0 matrix.
	ErrEmptyMatrix = errors.New("hungarian: cost matrix must be non-empty")

	// ErrDimensionMismatch indicates Reassign's placements/kinds disagree in
	// length with prob.Musicians.
	ErrDimensionMismatch = errors.New("hungarian: dimension mismatch between problem and placements")
)
