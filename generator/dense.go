package generator

import (
	"math/rand"

	"github.com/branchroot/minarb/core"
	"github.com/branchroot/minarb/matrix"
)

// defaultDenseMultiplier is the minimum edge count the Dense family
// targets absent an explicit WithEdgeCount, expressed as a multiple of n.
const defaultDenseMultiplier = 5

// Dense builds a backbone over n vertices and fills candidate arcs up to a
// target between 5*n and n*(n-1) edges. Candidacy is tracked in a
// matrix.Dense presence table rather than repeatedly probing g, since at
// this density most ordered pairs are eventually visited.
func Dense(n int, opts ...Option) (*core.Graph, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	o := newOptions(opts...)
	if int(o.root) < 0 || int(o.root) >= n {
		return nil, ErrInvalidRoot
	}

	maxEdges := n * (n - 1)
	target := o.edgeCount
	if !o.haveCount {
		target = defaultDenseMultiplier * n
	}
	if target < defaultDenseMultiplier*n || target > maxEdges {
		return nil, ErrInvalidEdgeCount
	}

	g := backbone(n, o.root, o)

	present, err := matrix.NewDense(n)
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		_ = present.Set(int(e.From), int(e.To), e.Cost)
	}

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	count := len(g.Edges())
	maxAttempts := maxEdges * 4
	for attempt := 0; count < target && attempt < maxAttempts; attempt++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		if _, ok, _ := present.At(u, v); ok {
			continue
		}
		cost := o.weightFn(rng)
		_ = present.Set(u, v, cost)
		_, _ = g.AddEdge(core.VertexID(u), core.VertexID(v), cost)
		count++
	}
	return g, nil
}
