// Package phase2 extracts a concrete minimum-cost arborescence from the
// zero-reduced-cost arc family F produced by frank.Solve. Both extractors
// attach each newly reached vertex through the earliest arc of F (by
// position in F) whose tail is already reached and whose head is not; they
// differ only in how they find that arc. An arbitrary arborescence drawn
// from F need not satisfy complementary slackness against Sigma (two F
// arcs may enter the same tight set).
//
// ExtractV1 grows the selected set by repeated linear rescans of F.
// ExtractV2 grows it with a container/heap priority queue ordered by each
// arc's enumeration index in F, avoiding the O(|F|) rescan per step.
package phase2
