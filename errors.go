package hampath

import (
	"errors"

	"github.com/gridwalk/hampath/feasibility"
	"github.com/gridwalk/hampath/gridgraph"
	"github.com/gridwalk/hampath/topology"
)

// Public error kinds, exactly the three of spec.md §7. Every sentinel
// raised by gridgraph, topology, and feasibility is classified into one of
// these at the package boundary, so a caller of Solve/SolveGraph only ever
// needs to check against these three with errors.Is.
var (
	// ErrInvalidInput wraps malformed grids, graphs, or strategy values.
	ErrInvalidInput = errors.New("hampath: invalid input")

	// ErrInfeasible wraps a statically-provable absence of any Hamiltonian
	// path for the given start, as reported by the pre-search check.
	ErrInfeasible = errors.New("hampath: infeasible instance")

	// ErrNoSolution indicates the search exhausted every branch under the
	// chosen strategy without finding a complete path.
	ErrNoSolution = errors.New("hampath: no solution found")

	// ErrUnknownStrategy indicates a Strategy value outside the seven named ones.
	ErrUnknownStrategy = errors.New("hampath: unknown strategy")
)

// classify maps an underlying sentinel from a supporting package onto one
// of the three public error kinds, preserving the original error in the
// chain so callers that need the precise cause can still errors.Is/As it.
func classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gridgraph.ErrEmptyGrid),
		errors.Is(err, gridgraph.ErrNonRectangular),
		errors.Is(err, gridgraph.ErrInvalidStart),
		errors.Is(err, gridgraph.ErrInvalidCell),
		errors.Is(err, topology.ErrStartNotFound),
		errors.Is(err, topology.ErrBadVertexID):
		return errors.Join(ErrInvalidInput, err)

	case errors.Is(err, feasibility.ErrDisconnected),
		errors.Is(err, feasibility.ErrTooManyLeaves),
		errors.Is(err, feasibility.ErrParityMismatch),
		errors.Is(err, feasibility.ErrStartIsArticulation),
		errors.Is(err, feasibility.ErrArticulationOverloaded):
		return errors.Join(ErrInfeasible, err)

	default:
		return err
	}
}
