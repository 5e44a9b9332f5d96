// Package dijkstra computes single-source shortest path distances over a
// core.Graph using a binary heap priority queue, used by the harness as a
// root-eccentricity diagnostic: the maximum finite distance
// from the candidate root is a cheap feasibility/difficulty signal for a
// generated instance before a solver ever runs on it.
package dijkstra
