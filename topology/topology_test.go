package topology_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"

	"github.com/gridwalk/hampath/gridgraph"
	"github.com/gridwalk/hampath/topology"
)

func compile(t *testing.T, m [][]int) (*topology.Graph, int32) {
	t.Helper()
	g, startID, err := gridgraph.BuildFromInts(m)
	require.NoError(t, err)
	top, start, err := topology.Compile(g, startID)
	require.NoError(t, err)

	return top, start
}

func TestCompileOrdersByRowCol(t *testing.T) {
	top, start := compile(t, [][]int{{2, 1}, {1, 1}})
	require.Equal(t, topology.Coord{Row: 0, Col: 0}, top.Coord(start))
	require.Equal(t, 4, top.N())
	// Vertex 0 must be (0,0) since Compile orders by (row,col) ascending.
	require.Equal(t, topology.Coord{Row: 0, Col: 0}, top.Coord(0))
}

func TestDegreeHonorsRemovedSet(t *testing.T) {
	// A 1x3 corridor: 2 1 1
	top, start := compile(t, [][]int{{2, 1, 1}})
	removed := bitset.New(uint(top.N()))
	require.Equal(t, 1, top.Degree(removed, start))
	mid := top.Neighbors(start)[0]
	require.Equal(t, 2, top.Degree(removed, mid))
	removed.Set(uint(start))
	require.Equal(t, 1, top.Degree(removed, mid))
}

func TestComponentsFromDisconnected(t *testing.T) {
	// Two 1x2 corridors with a wall of blocked cells between them.
	top, start := compile(t, [][]int{{2, 1, 0, 1, 1}})
	removed := bitset.New(uint(top.N()))
	require.Equal(t, 2, top.ComponentsFrom(removed, start))
}

func TestLeafCountExcludingCorridor(t *testing.T) {
	// A 1x4 corridor: start at one end, the far end is the only other leaf.
	top, start := compile(t, [][]int{{2, 1, 1, 1}})
	removed := bitset.New(uint(top.N()))
	require.Equal(t, 1, top.LeafCountExcluding(removed, start))
}

func TestArticulationPointsCorridor(t *testing.T) {
	// A 1x5 corridor: the three interior cells are articulation points.
	top, start := compile(t, [][]int{{2, 1, 1, 1, 1}})
	removed := bitset.New(uint(top.N()))
	ap, bccs := top.ArticulationPoints(removed, start)

	apCount := 0
	for v := 0; v < top.N(); v++ {
		if ap.Test(uint(v)) {
			apCount++
		}
	}
	require.Equal(t, 3, apCount)
	require.False(t, ap.Test(uint(start)), "corridor endpoint (start) must not be an articulation point")
	require.Len(t, bccs, 4, "one bcc per edge of the corridor")
}

func TestEdgeIndexIsSymmetricAndDense(t *testing.T) {
	// A 1x3 corridor has exactly two edges.
	top, start := compile(t, [][]int{{2, 1, 1}})
	require.Equal(t, 2, top.NumEdges())
	mid := top.Neighbors(start)[0]
	e1, ok := top.EdgeIndex(start, mid)
	require.True(t, ok)
	e2, ok := top.EdgeIndex(mid, start)
	require.True(t, ok)
	require.Equal(t, e1, e2, "EdgeIndex must be symmetric")
	for i, w := range top.Neighbors(mid) {
		if w == start {
			require.Equal(t, e1, top.NeighborEdges(mid)[i])
		}
	}
}

func TestArticulationPointsStarShape(t *testing.T) {
	// A plus/star shape: centre is a single articulation point connecting
	// four one-cell arms.
	m := [][]int{
		{0, 2, 0},
		{1, 1, 1},
		{0, 1, 0},
	}
	top, start := compile(t, m)
	removed := bitset.New(uint(top.N()))
	ap, bccs := top.ArticulationPoints(removed, start)

	centre, _ := top.Index(gridgraph.VertexID(1, 1))
	require.True(t, ap.Test(uint(centre)), "centre of plus-shape must be an articulation point")
	require.False(t, ap.Test(uint(start)), "start (an arm tip) must not be an articulation point")
	require.Len(t, bccs, 4, "one bcc per arm")
}
