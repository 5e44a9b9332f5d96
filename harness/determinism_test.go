package harness_test

import (
	"testing"

	"github.com/branchroot/minarb/cle"
	"github.com/branchroot/minarb/core"
	"github.com/branchroot/minarb/frank"
	"github.com/branchroot/minarb/generator"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// toComparable sorts a node-link encoding's edges by (From, To) for diffing with
// go-cmp regardless of core.Graph.Edges' unspecified internal order.
func toComparable(g *core.Graph) core.NodeLink {
	nl := g.ToNodeLink()
	for i := 0; i < len(nl.Edges); i++ {
		for j := i + 1; j < len(nl.Edges); j++ {
			a, b := nl.Edges[i], nl.Edges[j]
			if b.From < a.From || (b.From == a.From && b.To < a.To) {
				nl.Edges[i], nl.Edges[j] = nl.Edges[j], nl.Edges[i]
			}
		}
	}
	return nl
}

func TestDeterminism_CLERepeatsIdentically(t *testing.T) {
	g, err := generator.Random(40, 80, generator.WithSeed(7))
	require.NoError(t, err)

	t1, err := cle.Solve(g, 0)
	require.NoError(t, err)
	t2, err := cle.Solve(g, 0)
	require.NoError(t, err)

	if diff := cmp.Diff(toComparable(t1), toComparable(t2)); diff != "" {
		t.Errorf("cle.Solve is not deterministic across repeated calls (-first +second):\n%s", diff)
	}
}

func TestDeterminism_FrankRepeatsIdentically(t *testing.T) {
	g, err := generator.Sparse(30, generator.WithSeed(8))
	require.NoError(t, err)

	r1, err := frank.Solve(g, 0)
	require.NoError(t, err)
	r2, err := frank.Solve(g, 0)
	require.NoError(t, err)

	if diff := cmp.Diff(r1.Sigma, r2.Sigma); diff != "" {
		t.Errorf("frank.Solve Sigma is not deterministic across repeated calls (-first +second):\n%s", diff)
	}
	require.Equal(t, len(r1.F), len(r2.F))
}
