package phase2

import (
	"fmt"

	"github.com/branchroot/minarb/core"
)

// ExtractV1 builds a spanning arborescence from f by repeated linear
// rescans: each pass looks for an edge whose tail is already reachable
// and whose head is not, selects it, and restarts the scan. It stops
// once a full pass makes no progress.
func ExtractV1(f []*core.Edge, n int, root core.VertexID) (*core.Graph, error) {
	if int(root) < 0 || int(root) >= n {
		return nil, fmt.Errorf("phase2: root %d: %w", root, ErrInvalidRoot)
	}

	visited := make(map[core.VertexID]bool, n)
	visited[root] = true
	remaining := append([]*core.Edge(nil), f...)
	var selected []*core.Edge

	for {
		progressed := false
		for i := 0; i < len(remaining); i++ {
			e := remaining[i]
			if visited[e.From] && !visited[e.To] {
				visited[e.To] = true
				selected = append(selected, e)
				remaining = append(remaining[:i], remaining[i+1:]...)
				progressed = true
				break
			}
		}
		if !progressed || len(visited) == n {
			break
		}
	}

	if len(visited) != n {
		return nil, ErrIncompleteFamily
	}

	out := core.NewGraph(core.WithVertexCount(n))
	for _, e := range selected {
		if _, err := out.AddEdge(e.From, e.To, e.Cost); err != nil {
			return nil, fmt.Errorf("phase2: ExtractV1: %w", err)
		}
	}
	return out, nil
}
