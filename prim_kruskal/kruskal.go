package prim_kruskal

import (
	"sort"

	"github.com/branchroot/minarb/core"
)

// undirectedEdge is a candidate MST edge: each directed arc of g
// contributes one, with its cost taken as-is. Antiparallel arcs both
// contribute; after the ascending sort the cheaper one is considered first.
type undirectedEdge struct {
	u, v core.VertexID
	cost int64
}

// Kruskal computes the minimum spanning tree cost of g's underlying
// undirected skeleton, using a disjoint-set union-find with path
// compression and union by rank. Returns ErrDisconnected if the
// skeleton is not connected.
func Kruskal(g *core.Graph) (int64, error) {
	n := g.Order()
	if n <= 1 {
		return 0, nil
	}

	var edges []undirectedEdge
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		edges = append(edges, undirectedEdge{u: e.From, v: e.To, cost: e.Cost})
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].cost < edges[j].cost })

	parent := make([]core.VertexID, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = core.VertexID(v)
	}

	var find func(core.VertexID) core.VertexID
	find = func(v core.VertexID) core.VertexID {
		for parent[v] != v {
			parent[v] = parent[parent[v]]
			v = parent[v]
		}
		return v
	}
	union := func(u, v core.VertexID) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	var total int64
	count := 0
	for _, e := range edges {
		if find(e.u) != find(e.v) {
			union(e.u, e.v)
			total += e.cost
			count++
			if count == n-1 {
				break
			}
		}
	}
	if count < n-1 {
		return 0, ErrDisconnected
	}
	return total, nil
}
