// Package cache implements the incremental impact cache described in
// spec.md §4.D: given a partial assignment of musicians to candidate
// positions, it maintains for each unassigned (position, instrument) pair
// the incremental happiness of placing that instrument there, under both
// its direct contribution and the blocking penalty future placements
// would impose on already-placed musicians.
//
// A Cache is constructed once per search attempt and mutated only through
// AddMatching; it is discarded when the attempt ends.
package cache
