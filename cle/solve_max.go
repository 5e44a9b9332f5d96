package cle

import "github.com/branchroot/minarb/core"

// SolveMax returns the maximum-cost arborescence of g rooted at r, via the
// standard reduction: negate every cost, solve for the minimum, negate the
// selected edges' costs back.
func SolveMax(g *core.Graph, r core.VertexID, opts ...Option) (*core.Graph, error) {
	negated := g.CloneEmpty()
	for _, e := range g.Edges() {
		if _, err := negated.AddEdge(e.From, e.To, -e.Cost); err != nil {
			return nil, err
		}
	}

	result, err := Solve(negated, r, opts...)
	if err != nil {
		return nil, err
	}

	out := g.CloneEmpty()
	for _, e := range result.Edges() {
		orig, err := g.Edge(e.From, e.To)
		if err != nil {
			return nil, err
		}
		if _, err := out.AddEdge(e.From, e.To, orig.Cost); err != nil {
			return nil, err
		}
	}
	return out, nil
}
