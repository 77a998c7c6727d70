package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridwalk/hampath/core"
)

func TestAddVertexDuplicate(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("0,0"))
	require.ErrorIs(t, g.AddVertex("0,0"), core.ErrDuplicateVertex)
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdgeRequiresBothEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("0,0"))
	require.ErrorIs(t, g.AddEdge("0,0", "0,1"), core.ErrVertexNotFound)

	require.NoError(t, g.AddVertex("0,1"))
	require.NoError(t, g.AddEdge("0,0", "0,1"))
	require.True(t, g.HasEdge("0,1", "0,0"), "edge must be symmetric regardless of insertion order")
}

func TestAddEdgeRejectsLoopsAndParallels(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("0,0"))
	require.NoError(t, g.AddVertex("0,1"))
	require.ErrorIs(t, g.AddEdge("0,0", "0,0"), core.ErrLoopNotAllowed)

	require.NoError(t, g.AddEdge("0,0", "0,1"))
	require.ErrorIs(t, g.AddEdge("0,1", "0,0"), core.ErrDuplicateEdge)
}

func TestNeighborsSortedAndDegree(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"1,1", "0,1", "2,1", "1,0", "1,2"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, nb := range []string{"0,1", "2,1", "1,0", "1,2"} {
		require.NoError(t, g.AddEdge("1,1", nb))
	}

	deg, err := g.Degree("1,1")
	require.NoError(t, err)
	require.Equal(t, 4, deg)

	nbs, err := g.NeighborIDs("1,1")
	require.NoError(t, err)
	require.Equal(t, []string{"0,1", "1,0", "1,2", "2,1"}, nbs)
}

func TestVerticesSortedAndCounts(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("1,0"))
	require.NoError(t, g.AddVertex("0,0"))
	require.NoError(t, g.AddEdge("0,0", "1,0"))

	require.Equal(t, []string{"0,0", "1,0"}, g.Vertices())
	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, 1, g.EdgeCount())
}
