package feasibility

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/gridwalk/hampath/topology"
)

// IncrementalCheck implements the biconnected-component rule of spec.md §4.C
// against the subgraph induced by every vertex not in removed, plus current
// itself: it computes articulation points once and rejects the branch if
// any biconnected component violates its articulation-point budget — one,
// if the component contains start; two, otherwise. current need not be
// scrubbed out of removed by the caller; ArticulationPoints always treats
// it as alive.
// Complexity: O(V + E).
func IncrementalCheck(t *topology.Graph, removed *bitset.BitSet, current, start int32) bool {
	_, bccs := t.ArticulationPoints(removed, current)
	for _, bcc := range bccs {
		budget := 2
		for _, v := range bcc.Vertices {
			if v == start {
				budget = 1
				break
			}
		}
		if len(bcc.ArticulationPoints) > budget {
			return false
		}
	}

	return true
}
