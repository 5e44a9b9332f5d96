// Package minarb computes minimum-cost r-arborescences: rooted spanning
// trees of a directed graph in which every vertex is reachable from the
// root along tree edges, at minimum total edge cost.
//
// Two independent solvers are provided and cross-checked against each
// other by the test harness:
//
//	cle/    — Chu-Liu/Edmonds, via recursive cycle contraction
//	frank/  — András Frank's primal-dual method, producing a zero-cost
//	          arc family and a dual certificate that two independent
//	          Phase-II extractors (phase2/) turn into a tree
//
// Supporting packages:
//
//	core/         — the directed graph model (dense integer vertex IDs)
//	certificate/  — LP-duality verification of a Phase-II tree against Σ
//	generator/    — random/sparse/dense/layered rooted test instances
//	harness/      — batch runner cross-checking both solvers
//	bfs/, dfs/    — reachability and cycle-detection primitives
//	dijkstra/, prim_kruskal/ — diagnostics used by harness
//	matrix/       — presence table for generator's dense family
//
// cmd/arbvolume runs a default batch from the command line.
package minarb
