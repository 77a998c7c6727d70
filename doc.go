// Package hampath solves the Hamiltonian-path problem on 4-connected grids.
//
// Given an R×C matrix of blocked, walkable, and start cells, hampath finds
// a simple path that visits every walkable cell exactly once, beginning at
// start and ending wherever the search (or the grid's own shape) fixes the
// finish. Seven strategies trade search effort against pruning strength:
//
//	Backtracking               — plain DFS, no ordering, no pruning
//	Greedy                     — Warnsdorff-style most-constrained-first ordering
//	ForcedMove                 — + degree-1/degree-2 chain propagation
//	EdgeElimination            — + saturate/prune edge-commitment fixpoint
//	ValidationForcedMove       — ForcedMove + mid-search biconnected-component check
//	ValidationEdgeElimination  — EdgeElimination + the same validation
//	Optimized                  — every kernel at once, plus vertex deletion and
//	                             degree-2 chain contraction during descent
//
// The supporting packages do the structural work: gridgraph turns a matrix
// into a graph, topology compiles that graph into a dense search-friendly
// form and answers connectivity/articulation-point queries, feasibility
// rejects provably impossible instances (or prunes impossible branches) and
// prune carries the two search-time kernels. hampath itself is just the
// explicit-stack driver and the public Solve/SolveGraph entry points.
package hampath
