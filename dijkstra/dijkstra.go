package dijkstra

import (
	"container/heap"

	"github.com/branchroot/minarb/core"
)

const unreachable = -1

// Distances computes the shortest distance from root to every vertex in g,
// treating edge costs as nonnegative weights. Unreachable vertices are
// omitted from the result.
func Distances(g *core.Graph, root core.VertexID) (map[core.VertexID]int64, error) {
	n := g.Order()
	if int(root) < 0 || int(root) >= n {
		return nil, ErrInvalidRoot
	}

	dist := make(map[core.VertexID]int64, n)
	visited := make(map[core.VertexID]bool, n)

	pq := &nodePQ{{v: root, dist: 0}}
	dist[root] = 0
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(nodeDist)
		if visited[cur.v] {
			continue
		}
		visited[cur.v] = true

		for _, e := range g.OutEdges(cur.v) {
			next := cur.dist + e.Cost
			if d, ok := dist[e.To]; !ok || next < d {
				dist[e.To] = next
				heap.Push(pq, nodeDist{v: e.To, dist: next})
			}
		}
	}

	return dist, nil
}

// Eccentricity returns the maximum finite shortest-path distance from root
// to any vertex reachable from it. Used as a cheap difficulty signal: a
// larger eccentricity means deeper chains of forced tightening for frank
// and deeper recursion for cle.
func Eccentricity(g *core.Graph, root core.VertexID) (int64, error) {
	dist, err := Distances(g, root)
	if err != nil {
		return unreachable, err
	}

	var max int64
	for _, d := range dist {
		if d > max {
			max = d
		}
	}
	return max, nil
}
