package prune

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/gridwalk/hampath/topology"
)

// NoFinish is the sentinel value for "no finish vertex fixed yet", safe
// because every real vertex index is >= 0.
const NoFinish int32 = -1

// EdgeState is the branch-local bookkeeping the edge-elimination kernel
// needs: which edges are removed (can never be on the path) or committed
// (must be on the path), and the running degreeRemaining/committedCount
// counters spec.md §4.D defines. Every field is exported and caller-owned;
// the package never keeps its own copy, so callers are responsible for
// cloning before forking a branch and discarding on backtrack.
type EdgeState struct {
	Removed         *bitset.BitSet // edge-indexed
	Committed       *bitset.BitSet // edge-indexed
	DegreeRemaining []int          // per vertex
	CommittedCount  []int          // per vertex
}

// NewEdgeState builds the initial state for a freshly compiled graph: no
// edges removed or committed yet, degreeRemaining seeded from the graph's
// static degree.
func NewEdgeState(t *topology.Graph) *EdgeState {
	n := t.N()
	degree := make([]int, n)
	for v := 0; v < n; v++ {
		degree[v] = t.StaticDegree(int32(v))
	}

	return &EdgeState{
		Removed:         bitset.New(uint(t.NumEdges())),
		Committed:       bitset.New(uint(t.NumEdges())),
		DegreeRemaining: degree,
		CommittedCount:  make([]int, n),
	}
}

// Clone returns an independent copy sharing no backing storage with s,
// exactly the "snapshot into each pushed frame" shape spec.md §9 asks for.
func (s *EdgeState) Clone() *EdgeState {
	degree := make([]int, len(s.DegreeRemaining))
	copy(degree, s.DegreeRemaining)
	committed := make([]int, len(s.CommittedCount))
	copy(committed, s.CommittedCount)

	return &EdgeState{
		Removed:         s.Removed.Clone(),
		Committed:       s.Committed.Clone(),
		DegreeRemaining: degree,
		CommittedCount:  committed,
	}
}

// required implements spec.md §4.D's required[v]: 1 for start or finish, or
// whenever only one edge remains at v; 2 otherwise.
func required(v, start, finish int32, degreeRemaining int) int {
	if v == start || v == finish || degreeRemaining == 1 {
		return 1
	}

	return 2
}
