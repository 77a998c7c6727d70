package feasibility

import "github.com/gridwalk/hampath/topology"

// UnvisitedPlusCurrent derives the N of the parity rule from a branch's
// dense vertex count and its visited bitset's population: every vertex not
// yet visited, plus one for current itself (current is always marked
// visited once it becomes current, but the parity rule counts it anyway).
func UnvisitedPlusCurrent(n int, visitedCount int) int {
	return n - visitedCount + 1
}

// AcceptFinish implements the parity rule shared by the static pre-check
// (spec.md §4.C.3) and by both pruning kernels when they discover a new
// candidate finish mid-search (spec.md §4.D): given the current vertex,
// a candidate finish, and the count of vertices still unvisited (including
// current and the candidate), report whether the parity law holds.
//
// N even  -> current and finish must have different (row+col) parity.
// N odd   -> current and finish must share the same parity.
func AcceptFinish(t *topology.Graph, current, candidate int32, unvisitedCount int) bool {
	cp := t.Coord(current).Parity()
	fp := t.Coord(candidate).Parity()
	if unvisitedCount%2 == 0 {
		return cp != fp
	}

	return cp == fp
}
