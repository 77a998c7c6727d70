package feasibility

import "errors"

// Sentinel errors for the feasibility oracle. All map to spec.md's
// "Infeasible" error kind at the hampath package boundary.
var (
	// ErrDisconnected indicates the unvisited-plus-current subgraph is not
	// a single connected component.
	ErrDisconnected = errors.New("feasibility: graph is disconnected from the start vertex")

	// ErrTooManyLeaves indicates more than one degree-1 vertex other than
	// start exists, so no single finish vertex can absorb every dead end.
	ErrTooManyLeaves = errors.New("feasibility: more than one forced finish candidate")

	// ErrParityMismatch indicates the (row+col) parity of current and
	// finish is incompatible with the remaining unvisited count.
	ErrParityMismatch = errors.New("feasibility: start/finish parity is incompatible with path length")

	// ErrStartIsArticulation indicates start is a cut vertex of the
	// initial graph, so leaving it strands the rest.
	ErrStartIsArticulation = errors.New("feasibility: start is an articulation point")

	// ErrArticulationOverloaded indicates some articulation point would
	// split the graph into more than two pieces, which a simple path
	// cannot cover.
	ErrArticulationOverloaded = errors.New("feasibility: an articulation point splits the graph into more than two components")
)
