package phase2

import (
	"container/heap"
	"fmt"

	"github.com/branchroot/minarb/core"
)

// edgeItem is a frontier candidate in the priority queue: an edge from f,
// ordered by its enumeration index (its position in f) rather than by
// cost, since every edge in f has reduced cost zero.
type edgeItem struct {
	edge *core.Edge
	idx  int
}

// edgePQ is a min-heap of *edgeItem ordered by idx ascending.
type edgePQ []*edgeItem

func (pq edgePQ) Len() int            { return len(pq) }
func (pq edgePQ) Less(i, j int) bool  { return pq[i].idx < pq[j].idx }
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*edgeItem)) }
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// ExtractV2 builds a spanning arborescence from f using a container/heap
// priority queue: whenever a vertex becomes reachable, its outgoing f
// edges are pushed keyed by their enumeration index, and the queue always
// yields the earliest-enumerated usable edge next. This avoids the O(|F|)
// rescan ExtractV1 performs per selection.
func ExtractV2(f []*core.Edge, n int, root core.VertexID) (*core.Graph, error) {
	if int(root) < 0 || int(root) >= n {
		return nil, fmt.Errorf("phase2: root %d: %w", root, ErrInvalidRoot)
	}

	byTail := make(map[core.VertexID][]int, n)
	for i, e := range f {
		byTail[e.From] = append(byTail[e.From], i)
	}

	visited := make(map[core.VertexID]bool, n)
	visited[root] = true
	var selected []*core.Edge

	pq := make(edgePQ, 0, len(f))
	heap.Init(&pq)
	for _, i := range byTail[root] {
		heap.Push(&pq, &edgeItem{edge: f[i], idx: i})
	}

	for pq.Len() > 0 && len(visited) < n {
		item := heap.Pop(&pq).(*edgeItem)
		e := item.edge
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		selected = append(selected, e)
		for _, i := range byTail[e.To] {
			if !visited[f[i].To] {
				heap.Push(&pq, &edgeItem{edge: f[i], idx: i})
			}
		}
	}

	if len(visited) != n {
		return nil, ErrIncompleteFamily
	}

	out := core.NewGraph(core.WithVertexCount(n))
	for _, e := range selected {
		if _, err := out.AddEdge(e.From, e.To, e.Cost); err != nil {
			return nil, fmt.Errorf("phase2: ExtractV2: %w", err)
		}
	}
	return out, nil
}
