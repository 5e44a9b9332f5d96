package frank_test

import (
	"testing"

	"github.com/branchroot/minarb/core"
	"github.com/branchroot/minarb/frank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_AlreadyZeroCostTree(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(0, 2, 0)

	result, err := frank.Solve(g, 0)
	require.NoError(t, err)
	assert.Empty(t, result.Sigma)
	assert.Len(t, result.F, 2)
}

func TestSolve_RequiresTightening(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 5)
	_, _ = g.AddEdge(0, 2, 5)
	_, _ = g.AddEdge(1, 2, 1)

	result, err := frank.Solve(g, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Sigma)
	for _, term := range result.Sigma {
		assert.Positive(t, term.Y)
	}
}

func TestSolve_InfeasibleWhenUnreachable(t *testing.T) {
	g := core.NewGraph(core.WithVertexCount(3))
	_, _ = g.AddEdge(0, 1, 1)

	_, err := frank.Solve(g, 0)
	assert.ErrorIs(t, err, frank.ErrInfeasible)
}

func TestSolve_InvalidRoot(t *testing.T) {
	g := core.NewGraph(core.WithVertexCount(3))
	_, err := frank.Solve(g, 9)
	assert.ErrorIs(t, err, frank.ErrInvalidRoot)
}

func TestSolveMax_FIncludesHighestCostEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(0, 2, 1)
	_, _ = g.AddEdge(1, 2, 9)

	result, err := frank.SolveMax(g, 0)
	require.NoError(t, err)

	var total int64
	for _, e := range result.F {
		total += e.Cost
	}
	assert.GreaterOrEqual(t, total, int64(10))
}
