package hampath

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/gridwalk/hampath/feasibility"
	"github.com/gridwalk/hampath/prune"
	"github.com/gridwalk/hampath/topology"
)

// frame is one pushed branch of the explicit-stack search: a full snapshot
// of visited set, path, committed finish, and (for elimination strategies)
// edge-elimination state, matching spec.md §9's "snapshot into each pushed
// frame" shape. Backtracking is therefore a single discard of the popped
// frame, never an undo.
type frame struct {
	current int32
	finish  int32
	visited *bitset.BitSet
	path    []int32
	edge    *prune.EdgeState // nil unless the strategy runs elimination
}

func (f *frame) clone() *frame {
	path := make([]int32, len(f.path))
	copy(path, f.path)
	var edge *prune.EdgeState
	if f.edge != nil {
		edge = f.edge.Clone()
	}

	return &frame{
		current: f.current,
		finish:  f.finish,
		visited: f.visited.Clone(),
		path:    path,
		edge:    edge,
	}
}

// search runs the explicit-stack backtracking DFS of spec.md §4.E. It
// returns the dense vertex-index path and finish on success.
func search(t *topology.Graph, start int32, strategy Strategy, presetFinish int32) ([]int32, int32, bool) {
	init := &frame{
		current: start,
		finish:  presetFinish,
		visited: bitset.New(uint(t.N())),
		path:    []int32{start},
	}
	init.visited.Set(uint(start))
	if strategy.hasElimination() {
		init.edge = prune.NewEdgeState(t)
	}

	stack := []*frame{init}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if strategy.hasForcedMove() {
			if !prune.ForcedMove(t, f.visited, &f.path, &f.current, &f.finish) {
				continue
			}
		}
		if strategy.hasElimination() {
			if !prune.Eliminate(t, f.edge, f.visited, &f.path, &f.current, start, &f.finish) {
				continue
			}
		}
		if strategy.hasValidation() {
			if !feasibility.IncrementalCheck(t, f.visited, f.current, start) {
				continue
			}
		}

		if len(f.path) == t.N() {
			return f.path, f.current, true
		}

		for _, n := range orderedChildren(t, f.visited, f.current, strategy.hasOrdering()) {
			if f.edge != nil {
				if e, ok := t.EdgeIndex(f.current, n); ok && f.edge.Removed.Test(uint(e)) {
					continue
				}
			}
			child := f.clone()
			child.visited.Set(uint(n))
			child.path = append(child.path, n)
			child.current = n
			stack = append(stack, child)
		}
	}

	return nil, 0, false
}

// orderedChildren lists current's unvisited neighbours. When ordered is
// true they are sorted by their own remaining degree descending — since
// the caller pushes in this order onto a LIFO stack, the lowest-degree
// (most constrained) neighbour is popped and explored first, the
// Warnsdorff heuristic in reverse (spec.md §4.E). Ties break on (row, col)
// ascending so the search is reproducible.
func orderedChildren(t *topology.Graph, visited *bitset.BitSet, current int32, ordered bool) []int32 {
	var cands []int32
	for _, n := range t.Neighbors(current) {
		if !visited.Test(uint(n)) {
			cands = append(cands, n)
		}
	}
	if !ordered {
		return cands
	}

	sort.Slice(cands, func(i, j int) bool {
		di, dj := t.Degree(visited, cands[i]), t.Degree(visited, cands[j])
		if di != dj {
			return di > dj
		}
		ci, cj := t.Coord(cands[i]), t.Coord(cands[j])
		if ci.Row != cj.Row {
			return ci.Row < cj.Row
		}

		return ci.Col < cj.Col
	})

	return cands
}
