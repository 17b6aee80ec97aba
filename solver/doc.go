// Package solver is the top-level driver: it runs every candidate
// generator's ruin-and-recreate search in parallel, reassigns each result
// optimally via the hungarian package, scores every candidate solution,
// and returns the best one, per spec.md §4.H/§5.
package solver
