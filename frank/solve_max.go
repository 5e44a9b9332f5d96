package frank

import "github.com/branchroot/minarb/core"

// SolveMax runs Phase I over a shifted copy of g, mapping each edge cost to
// Cmax-cost where Cmax is the maximum edge cost in g, and remaps the zero
// family F back onto g's own edges. Unlike cle.SolveMax, negation cannot be
// used here: Phase I's tightening step requires every reduced cost to stay
// non-negative, and a negated graph has every cost ≤ 0, so no source
// component ever has a positive minCost to tighten and Solve always reports
// infeasibility. The Cmax-cost shift keeps costs non-negative (the minimum,
// Cmax-Cmax, is zero) while preserving the reduction: an arborescence
// maximizes cost in g iff it minimizes Cmax-cost in the shifted graph.
// Sigma remains expressed in the shifted cost space: checking a maximum
// arborescence against it with the certificate package requires applying
// the same Cmax-cost shift to that tree's edge costs first.
func SolveMax(g *core.Graph, r core.VertexID, opts ...Option) (*Result, error) {
	edges := g.Edges()
	var cmax int64
	for _, e := range edges {
		if e.Cost > cmax {
			cmax = e.Cost
		}
	}

	shifted := g.CloneEmpty()
	for _, e := range edges {
		if _, err := shifted.AddEdge(e.From, e.To, cmax-e.Cost); err != nil {
			return nil, err
		}
	}

	result, err := Solve(shifted, r, opts...)
	if err != nil {
		return nil, err
	}

	f := make([]*core.Edge, 0, len(result.F))
	for _, e := range result.F {
		orig, err := g.Edge(e.From, e.To)
		if err != nil {
			return nil, err
		}
		f = append(f, orig)
	}

	return &Result{F: f, Sigma: result.Sigma}, nil
}
