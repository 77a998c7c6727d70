package prune

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/gridwalk/hampath/feasibility"
	"github.com/gridwalk/hampath/topology"
)

// Eliminate runs the saturate/prune fixpoint of spec.md §4.D over st, then
// walks current as far as possible along committed edges, appending to
// *path and marking the walked vertices visited. It returns false if the
// fixpoint removes every edge at some vertex that still needs one, or if a
// leaf exposed by elimination fails the parity law.
func Eliminate(t *topology.Graph, st *EdgeState, visited *bitset.BitSet, path *[]int32, current *int32, start int32, finish *int32) bool {
	if !saturatePrune(t, st, start, *finish) {
		return false
	}

	for {
		moved := false
		for i, w := range t.Neighbors(*current) {
			e := t.NeighborEdges(*current)[i]
			if visited.Test(uint(w)) || !st.Committed.Test(uint(e)) {
				continue
			}
			visited.Set(uint(w))
			*path = append(*path, w)
			*current = w
			moved = true
			break
		}
		if !moved {
			break
		}
	}

	return acceptExposedLeaves(t, st, visited, *current, start, finish)
}

// saturatePrune runs the two propagation rules of spec.md §4.D to a
// fixpoint over a local work queue seeded with every vertex.
// Complexity: O(V + E) amortized, since each edge is committed or removed
// at most once.
func saturatePrune(t *topology.Graph, st *EdgeState, start, finish int32) bool {
	n := t.N()
	queued := make([]bool, n)
	queue := make([]int32, 0, n)
	push := func(v int32) {
		if !queued[v] {
			queued[v] = true
			queue = append(queue, v)
		}
	}
	for v := int32(0); v < int32(n); v++ {
		push(v)
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		queued[v] = false

		if st.DegreeRemaining[v] < required(v, start, finish, st.DegreeRemaining[v]) {
			return false
		}

		if st.DegreeRemaining[v] == required(v, start, finish, st.DegreeRemaining[v]) {
			for i, w := range t.Neighbors(v) {
				e := t.NeighborEdges(v)[i]
				if st.Removed.Test(uint(e)) || st.Committed.Test(uint(e)) {
					continue
				}
				st.Committed.Set(uint(e))
				st.CommittedCount[v]++
				st.CommittedCount[w]++
				if st.CommittedCount[w] == required(w, start, finish, st.DegreeRemaining[w]) {
					push(w)
				}
			}
		}

		if st.CommittedCount[v] == required(v, start, finish, st.DegreeRemaining[v]) {
			for i, w := range t.Neighbors(v) {
				e := t.NeighborEdges(v)[i]
				if st.Removed.Test(uint(e)) || st.Committed.Test(uint(e)) {
					continue
				}
				st.Removed.Set(uint(e))
				st.DegreeRemaining[v]--
				st.DegreeRemaining[w]--
				if st.DegreeRemaining[w] < 1 {
					return false
				}
				if st.DegreeRemaining[w] == required(w, start, finish, st.DegreeRemaining[w]) {
					push(w)
				}
			}
		}
	}

	return true
}

// acceptExposedLeaves treats every vertex other than start and current
// whose degreeRemaining has dropped to one as a finish candidate, applying
// the same parity acceptance as ForcedMove.
func acceptExposedLeaves(t *topology.Graph, st *EdgeState, visited *bitset.BitSet, current, start int32, finish *int32) bool {
	for v := int32(0); v < int32(t.N()); v++ {
		if v == start || v == current || visited.Test(uint(v)) {
			continue
		}
		if st.DegreeRemaining[v] != 1 {
			continue
		}
		if *finish == v {
			continue
		}
		if *finish != NoFinish {
			return false
		}
		n := feasibility.UnvisitedPlusCurrent(t.N(), int(visited.Count()))
		if !feasibility.AcceptFinish(t, current, v, n) {
			return false
		}
		*finish = v
	}

	return true
}
