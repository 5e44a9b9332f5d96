// Package dfs provides depth-first-search utilities over a core.Graph:
// a general topological sort (TopologicalSort, IsAcyclic), which the
// harness does not call, and a functional-graph cycle finder used
// internally by cle to locate a cycle formed when every non-root vertex
// has selected exactly one zero-cost in-edge.
package dfs
