package prune

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/gridwalk/hampath/feasibility"
	"github.com/gridwalk/hampath/topology"
)

// unvisitedNeighbors returns v's neighbours not yet in visited.
func unvisitedNeighbors(t *topology.Graph, visited *bitset.BitSet, v int32) []int32 {
	var out []int32
	for _, w := range t.Neighbors(v) {
		if !visited.Test(uint(w)) {
			out = append(out, w)
		}
	}

	return out
}

// ForcedMove runs the degree-1/degree-2 chain propagation of spec.md §4.D
// to a fixpoint, advancing *current and appending to *path in place against
// the branch-local visited bitset. It returns false the instant the branch
// is provably dead: two or more neighbours would independently become
// unreachable dead ends, or a newly discovered leaf fails the parity law.
//
// finish points at the branch's fixed-finish vertex (NoFinish if none is
// fixed yet); ForcedMove may set it when propagation exposes a new leaf.
func ForcedMove(t *topology.Graph, visited *bitset.BitSet, path *[]int32, current *int32, finish *int32) bool {
	for {
		for {
			nbrs := unvisitedNeighbors(t, visited, *current)
			if len(nbrs) != 1 {
				break
			}
			if !advance(t, visited, path, current, finish, nbrs[0]) {
				return false
			}
		}

		var forced []int32
		for _, n := range unvisitedNeighbors(t, visited, *current) {
			others := 0
			for _, w := range t.Neighbors(n) {
				if w != *current && !visited.Test(uint(w)) {
					others++
				}
			}
			switch others {
			case 0:
				// n's only remaining unvisited neighbour is current: n is
				// already a dead-end leaf, a finish candidate right now.
				if !acceptLeaf(t, visited, *current, finish, n) {
					return false
				}
			case 1:
				forced = append(forced, n)
			}
		}

		var effective []int32
		for _, f := range forced {
			if f != *finish {
				effective = append(effective, f)
			}
		}

		switch {
		case len(effective) == 0:
			return true
		case len(effective) > 1:
			return false
		default:
			if !advance(t, visited, path, current, finish, effective[0]) {
				return false
			}
		}
	}
}

// advance moves current to next, marking it visited, and re-checks parity
// against the branch's fixed finish (if any) as spec.md §4.D requires.
func advance(t *topology.Graph, visited *bitset.BitSet, path *[]int32, current, finish *int32, next int32) bool {
	visited.Set(uint(next))
	*path = append(*path, next)
	*current = next
	if *finish == NoFinish {
		return true
	}
	n := feasibility.UnvisitedPlusCurrent(t.N(), int(visited.Count()))

	return feasibility.AcceptFinish(t, *current, *finish, n)
}

// acceptLeaf treats a freshly discovered dead-end leaf as a finish
// candidate: accepted if no finish is fixed yet and parity permits, matched
// silently if it is already the fixed finish, and rejected otherwise.
func acceptLeaf(t *topology.Graph, visited *bitset.BitSet, current int32, finish *int32, leaf int32) bool {
	if *finish != NoFinish {
		return *finish == leaf
	}
	n := feasibility.UnvisitedPlusCurrent(t.N(), int(visited.Count()))
	if !feasibility.AcceptFinish(t, current, leaf, n) {
		return false
	}
	*finish = leaf

	return true
}
