package topology

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gridwalk/hampath/core"
)

// canonicalPair orders a pair so (u, v) and (v, u) map to the same key.
func canonicalPair(u, v int32) [2]int32 {
	if u < v {
		return [2]int32{u, v}
	}

	return [2]int32{v, u}
}

// parseCoord parses a core.Graph vertex ID of the form "row,col".
func parseCoord(id string) (Coord, error) {
	parts := strings.SplitN(id, ",", 2)
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}
	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}

	return Coord{Row: row, Col: col}, nil
}

// Compile walks g once and produces a dense, read-only Graph whose vertex
// indices are ordered by (row, col) ascending — a fixed row-major
// determinism — plus the dense index of startID.
//
// Complexity: O(V log V + E).
func Compile(g *core.Graph, startID string) (*Graph, int32, error) {
	ids := g.Vertices()
	coords := make([]Coord, len(ids))
	for i, id := range ids {
		c, err := parseCoord(id)
		if err != nil {
			return nil, 0, err
		}
		coords[i] = c
	}

	order := make([]int, len(ids))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ca, cb := coords[order[a]], coords[order[b]]
		if ca.Row != cb.Row {
			return ca.Row < cb.Row
		}

		return ca.Col < cb.Col
	})

	t := &Graph{
		n:     len(ids),
		adj:   make([][]int32, len(ids)),
		coord: make([]Coord, len(ids)),
		id:    make([]string, len(ids)),
		byID:  make(map[string]int32, len(ids)),
	}
	for newIdx, oldIdx := range order {
		t.id[newIdx] = ids[oldIdx]
		t.coord[newIdx] = coords[oldIdx]
		t.byID[ids[oldIdx]] = int32(newIdx)
	}

	t.edgeOf = make([][]int32, t.n)
	edgeID := make(map[[2]int32]int32)
	for v := 0; v < t.n; v++ {
		nbIDs, err := g.NeighborIDs(t.id[v])
		if err != nil {
			return nil, 0, fmt.Errorf("topology: Compile: %w", err)
		}
		nbs := make([]int32, 0, len(nbIDs))
		for _, nb := range nbIDs {
			nbs = append(nbs, t.byID[nb])
		}
		sort.Slice(nbs, func(a, b int) bool {
			ca, cb := t.coord[nbs[a]], t.coord[nbs[b]]
			if ca.Row != cb.Row {
				return ca.Row < cb.Row
			}

			return ca.Col < cb.Col
		})
		t.adj[v] = nbs

		edges := make([]int32, len(nbs))
		for i, w := range nbs {
			key := canonicalPair(int32(v), w)
			id, ok := edgeID[key]
			if !ok {
				id = int32(len(edgeID))
				edgeID[key] = id
			}
			edges[i] = id
		}
		t.edgeOf[v] = edges
	}
	t.numEdge = len(edgeID)

	start, ok := t.byID[startID]
	if !ok {
		return nil, 0, ErrStartNotFound
	}

	return t, start, nil
}
