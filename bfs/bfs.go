package bfs

import (
	"fmt"

	"github.com/branchroot/minarb/core"
)

// ReachableFrom runs a breadth-first traversal of g starting at root and
// returns the set of reached vertices with their depths. It stops early if
// the context passed via WithContext is cancelled.
func ReachableFrom(g *core.Graph, root core.VertexID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if int(root) < 0 || int(root) >= g.Order() {
		return nil, fmt.Errorf("bfs: root %d: %w", root, ErrStartVertexOutOfRange)
	}
	o := resolve(opts...)

	result := &Result{Depth: map[int]int{int(root): 0}}
	queue := []core.VertexID{root}
	o.onVisit(int(root), 0)

	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return result, o.ctx.Err()
		default:
		}

		curr := queue[0]
		queue = queue[1:]
		depth := result.Depth[int(curr)]

		for _, e := range g.OutEdges(curr) {
			if _, seen := result.Depth[int(e.To)]; seen {
				continue
			}
			result.Depth[int(e.To)] = depth + 1
			o.onVisit(int(e.To), depth+1)
			queue = append(queue, e.To)
		}
	}
	return result, nil
}

// AllReachable reports whether every vertex in [0, g.Order()) is reachable
// from root.
func AllReachable(g *core.Graph, root core.VertexID) (bool, error) {
	result, err := ReachableFrom(g, root)
	if err != nil {
		return false, err
	}
	return len(result.Depth) == g.Order(), nil
}
