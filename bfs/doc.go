// Package bfs provides breadth-first reachability over a core.Graph.
//
// What: ReachableFrom, a BFS that reports every reached vertex and its
// depth, and AllReachable, built on it, which cle and frank use to
// validate the precondition that every vertex is reachable from the chosen
// root before a solve begins.
//
// Why: both solvers assume a feasible instance (an arborescence rooted at r
// exists); the cheapest way to reject an infeasible one up front is a BFS
// reachability sweep, not a failed solve partway through contraction.
package bfs
