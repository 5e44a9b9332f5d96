package cle_test

import (
	"testing"

	"github.com/branchroot/minarb/cle"
	"github.com/branchroot/minarb/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func totalCost(g *core.Graph) int64 {
	var sum int64
	for _, e := range g.Edges() {
		sum += e.Cost
	}
	return sum
}

func TestSolve_SimpleTree(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(0, 2, 1)
	_, _ = g.AddEdge(1, 2, 1)

	tree, err := cle.Solve(g, 0)
	require.NoError(t, err)
	assert.Len(t, tree.Edges(), 2)
	assert.Equal(t, int64(2), totalCost(tree))
}

func TestSolve_ForcesContraction(t *testing.T) {
	// Classic textbook example: picking each node's cheapest in-edge
	// greedily forms a cycle among {1,2}, forcing one contraction.
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 2)
	_, _ = g.AddEdge(0, 2, 3)
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 1, 1)

	tree, err := cle.Solve(g, 0)
	require.NoError(t, err)
	assert.Len(t, tree.Edges(), 2)

	// Every non-root vertex has exactly one incoming edge.
	inDeg := map[core.VertexID]int{}
	for _, e := range tree.Edges() {
		inDeg[e.To]++
	}
	for v := core.VertexID(1); v < core.VertexID(tree.Order()); v++ {
		assert.Equal(t, 1, inDeg[v])
	}
}

func TestSolve_InfeasibleWhenUnreachable(t *testing.T) {
	g := core.NewGraph(core.WithVertexCount(3))
	_, _ = g.AddEdge(0, 1, 1)

	_, err := cle.Solve(g, 0)
	assert.ErrorIs(t, err, cle.ErrInfeasible)
}

func TestSolve_InvalidRoot(t *testing.T) {
	g := core.NewGraph(core.WithVertexCount(3))
	_, err := cle.Solve(g, 10)
	assert.ErrorIs(t, err, cle.ErrInvalidRoot)
}

func TestSolve_NestedContraction(t *testing.T) {
	// Two levels of contraction: {1,2} cycle nests inside a larger
	// {1,2,3} cycle once {1,2} is contracted.
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 10)
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 1, 1)
	_, _ = g.AddEdge(2, 3, 1)
	_, _ = g.AddEdge(3, 2, 1)
	_, _ = g.AddEdge(0, 3, 20)

	tree, err := cle.Solve(g, 0)
	require.NoError(t, err)
	assert.Len(t, tree.Edges(), 3)
}

func TestSolveMax_PicksHighestCostEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(0, 2, 1)
	_, _ = g.AddEdge(1, 2, 9)

	tree, err := cle.SolveMax(g, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(10), totalCost(tree))
}
