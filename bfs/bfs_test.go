package bfs_test

import (
	"testing"

	"github.com/branchroot/minarb/bfs"
	"github.com/branchroot/minarb/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReachable_Star(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(0, 2, 1)
	_, _ = g.AddEdge(0, 3, 1)

	ok, err := bfs.AllReachable(g, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAllReachable_DisconnectedVertex(t *testing.T) {
	g := core.NewGraph(core.WithVertexCount(4))
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 1)

	ok, err := bfs.AllReachable(g, 0)
	require.NoError(t, err)
	assert.False(t, ok, "vertex 3 has no incoming path from root")
}

func TestReachableFrom_Depths(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 1)

	result, err := bfs.ReachableFrom(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Depth[0])
	assert.Equal(t, 1, result.Depth[1])
	assert.Equal(t, 2, result.Depth[2])
}

func TestReachableFrom_RootOutOfRange(t *testing.T) {
	g := core.NewGraph(core.WithVertexCount(2))
	_, err := bfs.ReachableFrom(g, 5)
	assert.ErrorIs(t, err, bfs.ErrStartVertexOutOfRange)
}
