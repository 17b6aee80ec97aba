// Package greedy implements the assembler and ruin-and-recreate search of
// spec.md §4.E/§4.F: Assemble drives the incremental impact cache to a
// complete assignment one musician at a time, and Climb repeatedly
// destroys and rebuilds part of that assignment, keeping the best basic
// score seen across iterations.
package greedy
