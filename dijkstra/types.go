package dijkstra

import "github.com/branchroot/minarb/core"

// nodeDist is one entry in the priority queue: a candidate tentative
// distance to reach v.
type nodeDist struct {
	v    core.VertexID
	dist int64
}

// nodePQ is a binary min-heap of nodeDist ordered by dist, mirroring the
// teacher's shortest-path priority queue shape.
type nodePQ []nodeDist

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeDist)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
