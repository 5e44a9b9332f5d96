package certificate

import (
	"github.com/branchroot/minarb/core"
	"github.com/branchroot/minarb/frank"
)

// Check reports whether t satisfies complementary slackness against sigma:
// for every term (X, y) with y > 0, exactly one edge of t has its head in
// X and its tail outside X.
func Check(t *core.Graph, sigma []frank.DualTerm) bool {
	edges := t.Edges()
	for _, term := range sigma {
		if term.Y <= 0 {
			continue
		}
		inX := make(map[core.VertexID]bool, len(term.X))
		for _, v := range term.X {
			inX[v] = true
		}
		count := 0
		for _, e := range edges {
			if inX[e.To] && !inX[e.From] {
				count++
			}
		}
		if count != 1 {
			return false
		}
	}
	return true
}

// VerifyCost reports whether t's total edge cost equals the sum of
// sigma's dual values, the LP-duality equality that must hold for an
// optimal arborescence and its certificate.
func VerifyCost(t *core.Graph, sigma []frank.DualTerm) bool {
	var treeCost, dualSum int64
	for _, e := range t.Edges() {
		treeCost += e.Cost
	}
	for _, term := range sigma {
		dualSum += term.Y
	}
	return treeCost == dualSum
}
