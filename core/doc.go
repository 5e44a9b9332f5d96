// Package core defines the directed weighted graph type shared by every
// solver, generator, and harness in this module.
//
// What: Graph is a dense-integer-vertex digraph (IDs in [0,n)) backed by an
// adjacency list keyed by tail vertex, with parallel edges collapsed to the
// minimum-cost edge on insertion. VertexID is an opaque int; callers never
// construct one directly except via AddVertex's returned value or a literal
// in [0,n).
//
// Why dense integers: a vertex set is fully described by its order n, and
// per-vertex tables (the visit state in dfs, the union-find arrays in
// prim_kruskal) can be plain slices instead of maps.
//
// Key types: Graph, VertexID, Edge, NodeLink (a JSON-friendly snapshot of
// a Graph; the harness's determinism test compares solver outputs through
// it).
//
// Concurrency: Graph guards its vertex and edge maps with a sync.RWMutex.
// Solvers never mutate a Graph concurrently with another solver call, but
// the lock is kept so that a Graph can be safely inspected (Clone, Edges,
// Order) from a concurrent diagnostic goroutine while a solve is read-only
// in progress.
package core
