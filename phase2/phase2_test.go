package phase2_test

import (
	"testing"

	"github.com/branchroot/minarb/core"
	"github.com/branchroot/minarb/phase2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleF(g *core.Graph) []*core.Edge {
	return g.Edges()
}

func TestExtractV1_SpansAllVertices(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(0, 2, 0)
	_, _ = g.AddEdge(1, 2, 0)

	tree, err := phase2.ExtractV1(sampleF(g), 3, 0)
	require.NoError(t, err)
	assert.Len(t, tree.Edges(), 2)
}

func TestExtractV2_SpansAllVertices(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(0, 2, 0)
	_, _ = g.AddEdge(1, 2, 0)

	tree, err := phase2.ExtractV2(sampleF(g), 3, 0)
	require.NoError(t, err)
	assert.Len(t, tree.Edges(), 2)
}

func TestExtractV1_IncompleteFamily(t *testing.T) {
	g := core.NewGraph(core.WithVertexCount(3))
	_, _ = g.AddEdge(0, 1, 0)

	_, err := phase2.ExtractV1(sampleF(g), 3, 0)
	assert.ErrorIs(t, err, phase2.ErrIncompleteFamily)
}

func TestExtractV2_IncompleteFamily(t *testing.T) {
	g := core.NewGraph(core.WithVertexCount(3))
	_, _ = g.AddEdge(0, 1, 0)

	_, err := phase2.ExtractV2(sampleF(g), 3, 0)
	assert.ErrorIs(t, err, phase2.ErrIncompleteFamily)
}

func TestBothExtractors_AgreeOnCost(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(1, 2, 0)
	_, _ = g.AddEdge(0, 2, 0)
	_, _ = g.AddEdge(2, 3, 0)

	t1, err := phase2.ExtractV1(sampleF(g), 4, 0)
	require.NoError(t, err)
	t2, err := phase2.ExtractV2(sampleF(g), 4, 0)
	require.NoError(t, err)

	assert.Equal(t, len(t1.Edges()), len(t2.Edges()))
}
