package generator

import (
	"math/rand"

	"github.com/branchroot/minarb/core"
)

// backbone builds an n-vertex graph in which every non-root vertex has
// exactly one incoming edge from the set of already-reached vertices,
// guaranteeing the result contains at least one arborescence rooted at
// root. Vertices are attached in a random order, each to a uniformly
// random member of the reached set so far.
func backbone(n int, root core.VertexID, o *options) *core.Graph {
	g := core.NewGraph(core.WithVertexCount(n))
	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	reached := make([]core.VertexID, 1, n)
	reached[0] = root

	remaining := make([]core.VertexID, 0, n-1)
	for v := 0; v < n; v++ {
		if core.VertexID(v) != root {
			remaining = append(remaining, core.VertexID(v))
		}
	}
	rng.Shuffle(len(remaining), func(i, j int) { remaining[i], remaining[j] = remaining[j], remaining[i] })

	for _, v := range remaining {
		u := reached[rng.Intn(len(reached))]
		_, _ = g.AddEdge(u, v, o.weightFn(rng))
		reached = append(reached, v)
	}
	return g
}
