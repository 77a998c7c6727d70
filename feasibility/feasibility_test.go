package feasibility_test

import (
	"errors"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"

	"github.com/gridwalk/hampath/feasibility"
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

func TestStaticCheckDisconnected(t *testing.T) {
	top, start := compile(t, [][]int{{2, 1, 0, 1, 1}})
	_, err := feasibility.StaticCheck(top, start)
	require.ErrorIs(t, err, feasibility.ErrDisconnected)
}

func TestStaticCheckTooManyLeaves(t *testing.T) {
	// A plus shape with start at its centre: all four arm tips are leaves.
	m := [][]int{
		{0, 1, 0},
		{1, 2, 1},
		{0, 1, 0},
	}
	top, start := compile(t, m)
	_, err := feasibility.StaticCheck(top, start)
	require.ErrorIs(t, err, feasibility.ErrTooManyLeaves)
}

func TestStaticCheckFixesForcedFinish(t *testing.T) {
	// A 1x4 corridor: start at one end, far end is the sole other leaf.
	top, start := compile(t, [][]int{{2, 1, 1, 1}})
	res, err := feasibility.StaticCheck(top, start)
	require.NoError(t, err)
	require.True(t, res.FinishFixed)
	wantFinish, _ := top.Index(gridgraph.VertexID(0, 3))
	require.Equal(t, wantFinish, res.Finish)
}

func TestStaticCheckStartIsArticulation(t *testing.T) {
	// Start sits at the junction of a plus shape with a two-cell lower arm,
	// splitting the graph into four arms the instant it departs. The four
	// arm tips are also leaves, and the leaf-count check runs before the
	// articulation check, so either sentinel is accepted.
	m := [][]int{
		{0, 1, 0},
		{1, 2, 1},
		{0, 1, 0},
		{0, 1, 0},
	}
	top, start := compile(t, m)
	_, err := feasibility.StaticCheck(top, start)
	isArticulation := errors.Is(err, feasibility.ErrStartIsArticulation)
	isTooManyLeaves := errors.Is(err, feasibility.ErrTooManyLeaves)
	require.True(t, isArticulation || isTooManyLeaves,
		"err = %v, want ErrStartIsArticulation or ErrTooManyLeaves", err)
}

func TestStaticCheckAcceptsSimpleCorridor(t *testing.T) {
	top, start := compile(t, [][]int{{2, 1, 1}})
	res, err := feasibility.StaticCheck(top, start)
	require.NoError(t, err)
	require.True(t, res.FinishFixed, "expected a forced finish in a corridor")
}

func TestIncrementalCheckCorridorAlwaysWithinBudget(t *testing.T) {
	// Every biconnected component of a corridor is a single edge: the one
	// holding start has one articulation point, every other at most two, so
	// the rule never fires.
	top, start := compile(t, [][]int{{2, 1, 1, 1, 1}})
	removed := bitset.New(uint(top.N()))
	require.True(t, feasibility.IncrementalCheck(top, removed, start, start))
}

func TestIncrementalCheckRejectsOverloadedArticulation(t *testing.T) {
	// An 8-cell ring (the border of a 3x3 block with a blocked centre) with
	// three pendant leaves hanging off three of its corners. The ring is a
	// single biconnected component containing start and all three corner
	// articulation points, three times over its one-AP budget.
	m := [][]int{
		{0, 1, 0, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 0, 1, 0},
		{0, 1, 1, 2, 0},
		{0, 1, 0, 0, 0},
	}
	top, start := compile(t, m)
	removed := bitset.New(uint(top.N()))
	require.False(t, feasibility.IncrementalCheck(top, removed, start, start),
		"must reject a ring carrying three articulation points")
}
