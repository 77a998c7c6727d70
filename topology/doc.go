// Package topology is component B of the Hamiltonian grid solver: a dense,
// index-addressed, read-only compilation of a *core.Graph, plus the
// structural queries every higher component needs against the subgraph
// induced by whichever vertices a branch still considers "unvisited".
//
// Compile walks a *core.Graph once and produces a Graph whose vertices are
// dense int32 indices 0..n-1 (ordered by (row, col) ascending, a fixed
// row-major determinism) and whose adjacency is a plain [][]int32 — no
// maps, no locks, safe to share read-only across every branch of the
// search. Per-branch "this vertex is gone" state is passed in
// explicitly as a *bitset.BitSet ("removed") rather than stored on the
// Graph, so the same compiled Graph serves every live branch at once.
//
// Degree, connected-component count, leaf count, and articulation
// points/biconnected components are all expressed relative to a
// removed-set, exactly as spec.md §4.B describes; Neighbors returns the
// full static adjacency. ArticulationPoints is
// implemented iteratively (explicit frame stack) because grids routinely
// exceed 400 vertices.
package topology
