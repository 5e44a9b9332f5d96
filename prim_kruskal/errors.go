package prim_kruskal

import "errors"

// ErrDisconnected is returned when the graph's underlying undirected
// skeleton has more than one connected component.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")
