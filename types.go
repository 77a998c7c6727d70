package hampath

import (
	"fmt"
	"time"

	"github.com/gridwalk/hampath/topology"
)

// Vertex is a single grid cell on a solved (or attempted) path.
type Vertex struct {
	Row, Col int
}

func vertexOf(t *topology.Graph, v int32) Vertex {
	c := t.Coord(v)

	return Vertex{Row: c.Row, Col: c.Col}
}

// Elapsed is a solve's wall-clock duration, formatted with microsecond
// resolution exactly as spec.md §6 mandates: "<s>.<us> s (<ms>.<µs> ms)".
type Elapsed time.Duration

// String renders e as e.g. "1.234567 s (1234.567 ms)".
func (e Elapsed) String() string {
	us := time.Duration(e).Microseconds()
	s, usRem := us/1_000_000, us%1_000_000
	ms, usRem2 := us/1_000, us%1_000

	return fmt.Sprintf("%d.%06d s (%d.%03d ms)", s, usRem, ms, usRem2)
}

// Result is the outcome of a Solve/SolveGraph call.
type Result struct {
	Path    []Vertex
	Found   bool
	Finish  Vertex
	Elapsed Elapsed
}

// Strategy selects which ordering and pruning kernels the search driver
// runs. It is a bitmask of four orthogonal flags plus one "optimized
// extras" flag, composed into the seven named values spec.md §4.E exposes.
type Strategy uint8

const (
	flagOrdering Strategy = 1 << iota
	flagForcedMove
	flagElimination
	flagValidation
	flagOptimizedExtras
)

const (
	// Backtracking is plain DFS: arbitrary neighbour order, no pruning.
	Backtracking Strategy = 0

	// Greedy orders neighbours by Warnsdorff's rule but prunes nothing.
	Greedy = flagOrdering

	// ForcedMove adds degree-1/degree-2 chain propagation to Greedy.
	ForcedMove = flagOrdering | flagForcedMove

	// EdgeElimination adds the saturate/prune edge-commitment fixpoint to Greedy.
	EdgeElimination = flagOrdering | flagElimination

	// ValidationForcedMove adds the incremental biconnected-component check to ForcedMove.
	ValidationForcedMove = flagOrdering | flagForcedMove | flagValidation

	// ValidationEdgeElimination adds the incremental check to EdgeElimination.
	ValidationEdgeElimination = flagOrdering | flagElimination | flagValidation

	// Optimized runs every kernel together: ordering, forced-move, elimination,
	// incremental validation, and the additional descent-time optimizations
	// (vertex deletion on descent and degree-2 chain contraction, both of
	// which fall directly out of how topology's removed-set queries and
	// prune.ForcedMove's inner loop already work).
	Optimized = flagOrdering | flagForcedMove | flagElimination | flagValidation | flagOptimizedExtras
)

// AllStrategies lists the seven named strategies in increasing order of
// pruning strength, for callers (the CLI's bench command, cross-strategy
// tests) that want to run every one of them.
func AllStrategies() []Strategy {
	return []Strategy{
		Backtracking, Greedy, ForcedMove, EdgeElimination,
		ValidationForcedMove, ValidationEdgeElimination, Optimized,
	}
}

func (s Strategy) hasOrdering() bool   { return s&flagOrdering != 0 }
func (s Strategy) hasForcedMove() bool { return s&flagForcedMove != 0 }
func (s Strategy) hasElimination() bool {
	return s&flagElimination != 0
}
func (s Strategy) hasValidation() bool { return s&flagValidation != 0 }

// ParseStrategy maps a strategy's String() form back to its value, for
// flag parsing. It is the exact inverse of String for the seven named
// strategies and rejects anything else, including unknown bit combinations.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "backtracking":
		return Backtracking, nil
	case "greedy":
		return Greedy, nil
	case "forced_move":
		return ForcedMove, nil
	case "edge_elimination":
		return EdgeElimination, nil
	case "validation_forced_move":
		return ValidationForcedMove, nil
	case "validation_edge_elimination":
		return ValidationEdgeElimination, nil
	case "optimized":
		return Optimized, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy name %q", ErrUnknownStrategy, name)
	}
}

// String names the seven strategies spec.md exposes, or reports an unknown
// bit combination verbatim for debugging.
func (s Strategy) String() string {
	switch s {
	case Backtracking:
		return "backtracking"
	case Greedy:
		return "greedy"
	case ForcedMove:
		return "forced_move"
	case EdgeElimination:
		return "edge_elimination"
	case ValidationForcedMove:
		return "validation_forced_move"
	case ValidationEdgeElimination:
		return "validation_edge_elimination"
	case Optimized:
		return "optimized"
	default:
		return fmt.Sprintf("strategy(%#02x)", uint8(s))
	}
}
