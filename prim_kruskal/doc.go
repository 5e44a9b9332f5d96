// Package prim_kruskal computes an undirected minimum spanning tree cost
// over a core.Graph's underlying vertex set, used by the harness as a
// cheap lower-bound diagnostic: no rooted arborescence can
// cost less than the undirected MST of the same edges.
package prim_kruskal
