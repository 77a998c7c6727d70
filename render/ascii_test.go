package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridwalk/hampath"
	"github.com/gridwalk/hampath/gridgraph"
	"github.com/gridwalk/hampath/render"
)

func TestASCIIRenderMarksPathAndBlocked(t *testing.T) {
	m := [][]gridgraph.Cell{
		{gridgraph.Start, gridgraph.Walkable},
		{gridgraph.Blocked, gridgraph.Walkable},
	}
	path := []hampath.Vertex{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
		{Row: 1, Col: 1},
	}
	start, finish := path[0], path[len(path)-1]

	out, err := (render.ASCII{}).Render(m, path, start, finish)
	require.NoError(t, err)
	require.Equal(t, "01\n#2\n", string(out))
}

func TestASCIIRenderEmptyPathShowsStartOnly(t *testing.T) {
	m := [][]gridgraph.Cell{{gridgraph.Start, gridgraph.Walkable}}
	start := hampath.Vertex{Row: 0, Col: 0}

	out, err := (render.ASCII{}).Render(m, nil, start, start)
	require.NoError(t, err)
	require.Equal(t, "0.\n", string(out))
}
