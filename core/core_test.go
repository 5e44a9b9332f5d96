package core_test

import (
	"testing"

	"github.com/branchroot/minarb/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdge_CollapsesParallelToMinimum(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(0, 1, 10)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 3)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 7)
	require.NoError(t, err)

	e, err := g.Edge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), e.Cost)
	assert.Len(t, g.Edges(), 1)
}

func TestAddEdge_RejectsSelfLoop(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(0, 0, 1)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestAddEdge_GrowsVertexSet(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(2, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Order())
}

func TestCloneEmpty_PreservesOrderDropsEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 1)

	empty := g.CloneEmpty()
	assert.Equal(t, g.Order(), empty.Order())
	assert.Empty(t, empty.Edges())
}

func TestClone_IsIndependent(t *testing.T) {
	g := core.NewGraph()
	e, _ := g.AddEdge(0, 1, 5)

	clone := g.Clone()
	e.Cost = 99

	cloned, err := clone.Edge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cloned.Cost)
}

func TestNodeLinkRoundTrip(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 4)
	_, _ = g.AddEdge(1, 2, 7)

	nl := g.ToNodeLink()
	rebuilt := core.FromNodeLink(nl)

	assert.Equal(t, g.Order(), rebuilt.Order())
	e, err := rebuilt.Edge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), e.Cost)
}

func TestInDegree(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 2, 1)
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(1, 3, 1)

	assert.Equal(t, 2, g.InDegree(2))
	assert.Equal(t, 0, g.InDegree(0))
}
