// Package hungarian implements the Kuhn-Munkres optimal assignment
// algorithm (potentials u,v with a way predecessor array, O(m^3)) and a
// domain wrapper that reassigns an existing placement's musicians to their
// optimal instrument slots without moving any position, per spec.md §4.G.
package hungarian
