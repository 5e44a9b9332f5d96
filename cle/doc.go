// Package cle implements the Chu-Liu/Edmonds algorithm for the minimum-cost
// rooted arborescence problem via recursive cycle contraction.
//
// What: Solve picks, for every non-root vertex, its cheapest incoming arc;
// if those choices form an arborescence, they are the answer; otherwise
// they contain at least one cycle, and the first one found is contracted
// into a single
// supernode and the problem is solved recursively on the smaller instance,
// then expanded back by rerouting exactly one arc of the broken cycle.
//
// Complexity: O(VE) overall across all contraction levels, since each
// level is O(E) and there are at most V-1 contractions.
package cle
