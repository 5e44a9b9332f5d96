package generator

import (
	"math/rand"

	"github.com/branchroot/minarb/core"
)

// Random builds a backbone over n vertices and then samples additional
// edges uniformly over ordered non-loop pairs until the graph holds m
// distinct edges (or fillRandomPairs' bound on sampling attempts is reached).
func Random(n, m int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	o := newOptions(opts...)
	if int(o.root) < 0 || int(o.root) >= n {
		return nil, ErrInvalidRoot
	}
	if m < n-1 || m > n*(n-1) {
		return nil, ErrInvalidEdgeCount
	}

	g := backbone(n, o.root, o)
	fillRandomPairs(g, n, m, o)
	return g, nil
}

// fillRandomPairs samples uniformly random ordered non-loop pairs and adds
// any that are not already present, until g holds target edges or a bound
// on sampling attempts is reached (relevant only as target approaches the
// complete digraph).
func fillRandomPairs(g *core.Graph, n, target int, o *options) {
	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	maxAttempts := target * 20
	if maxAttempts < 1000 {
		maxAttempts = 1000
	}
	count := len(g.Edges())
	for attempt := 0; count < target && attempt < maxAttempts; attempt++ {
		u := core.VertexID(rng.Intn(n))
		v := core.VertexID(rng.Intn(n))
		if u == v || g.HasEdge(u, v) {
			continue
		}
		_, _ = g.AddEdge(u, v, o.weightFn(rng))
		count++
	}
}
