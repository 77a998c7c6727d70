package feasibility

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/gridwalk/hampath/topology"
)

// StaticResult is the outcome of a StaticCheck that returned a nil error:
// if exactly one non-start leaf exists, Finish is fixed to it before the
// search begins.
type StaticResult struct {
	Finish      int32
	FinishFixed bool
}

// StaticCheck runs the five pre-search checks of spec.md §4.C against the
// whole graph (nothing visited yet). It returns one of this package's
// sentinel errors the instant any check fails.
// Complexity: O(V + E).
func StaticCheck(t *topology.Graph, start int32) (StaticResult, error) {
	empty := bitset.New(uint(t.N()))

	// 1. Connectivity.
	if t.ComponentsFrom(empty, start) != 1 {
		return StaticResult{}, ErrDisconnected
	}

	// 2. Leaf count: at most one leaf other than start; if one exists, fix it as finish.
	res := StaticResult{}
	leafCount := t.LeafCountExcluding(empty, start)
	if leafCount > 1 {
		return StaticResult{}, ErrTooManyLeaves
	}
	if leafCount == 1 {
		res.Finish = soleLeafExcluding(t, empty, start)
		res.FinishFixed = true

		// 3. Parity, only checkable once finish is fixed. Nothing has been
		// visited yet except start itself.
		if !AcceptFinish(t, start, res.Finish, UnvisitedPlusCurrent(t.N(), 1)) {
			return StaticResult{}, ErrParityMismatch
		}
	}

	// 4 & 5. Articulation-point checks on the whole graph.
	ap, bccs := t.ArticulationPoints(empty, start)
	if ap.Test(uint(start)) {
		return StaticResult{}, ErrStartIsArticulation
	}

	incident := make(map[int32]int, ap.Count())
	for _, bcc := range bccs {
		for _, a := range bcc.ArticulationPoints {
			incident[a]++
		}
	}
	for _, count := range incident {
		if count > 2 {
			return StaticResult{}, ErrArticulationOverloaded
		}
	}

	return res, nil
}

// soleLeafExcluding locates the one vertex LeafCountExcluding(removed,
// exclude) == 1 already promised exists: the sole non-excluded,
// not-removed vertex of degree 1.
func soleLeafExcluding(t *topology.Graph, removed *bitset.BitSet, exclude int32) int32 {
	for v := 0; v < t.N(); v++ {
		vv := int32(v)
		if vv == exclude || removed.Test(uint(vv)) {
			continue
		}
		if t.Degree(removed, vv) == 1 {
			return vv
		}
	}

	panic("feasibility: LeafCountExcluding reported 1 but no leaf was found")
}
