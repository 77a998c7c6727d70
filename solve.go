package hampath

import (
	"errors"
	"time"

	"github.com/gridwalk/hampath/core"
	"github.com/gridwalk/hampath/feasibility"
	"github.com/gridwalk/hampath/gridgraph"
	"github.com/gridwalk/hampath/prune"
	"github.com/gridwalk/hampath/topology"
)

// Solve builds a graph from matrix and finds a Hamiltonian path under
// strategy. See SolveGraph for the shared implementation.
func Solve(matrix [][]gridgraph.Cell, strategy Strategy) (Result, error) {
	g, startID, err := gridgraph.Build(matrix)
	if err != nil {
		return Result{}, classify(err)
	}

	return SolveGraph(g, startID, strategy)
}

// SolveGraph finds a Hamiltonian path in g starting at startID under
// strategy. It returns (Result{Found: true, ...}, nil) on success,
// (Result{Found: false, ...}, ErrNoSolution) when the search is exhausted,
// and a wrapped ErrInvalidInput/ErrInfeasible for any earlier rejection.
func SolveGraph(g *core.Graph, startID string, strategy Strategy) (Result, error) {
	if !validStrategy(strategy) {
		return Result{}, errors.Join(ErrInvalidInput, ErrUnknownStrategy)
	}

	started := time.Now()

	t, start, err := topology.Compile(g, startID)
	if err != nil {
		return Result{}, classify(err)
	}

	staticRes, err := feasibility.StaticCheck(t, start)
	if err != nil {
		return Result{}, classify(err)
	}

	presetFinish := prune.NoFinish
	if staticRes.FinishFixed {
		presetFinish = staticRes.Finish
	}

	path, finish, found := search(t, start, strategy, presetFinish)
	elapsed := Elapsed(time.Since(started))
	if !found {
		return Result{Found: false, Elapsed: elapsed}, ErrNoSolution
	}

	vertices := make([]Vertex, len(path))
	for i, v := range path {
		vertices[i] = vertexOf(t, v)
	}

	return Result{
		Path:    vertices,
		Found:   true,
		Finish:  vertexOf(t, finish),
		Elapsed: elapsed,
	}, nil
}

func validStrategy(s Strategy) bool {
	switch s {
	case Backtracking, Greedy, ForcedMove, EdgeElimination,
		ValidationForcedMove, ValidationEdgeElimination, Optimized:
		return true
	default:
		return false
	}
}
