// Package gridgraph converts a rectangular matrix of grid cells into a
// *core.Graph plus a marked start vertex — component A of the Hamiltonian
// grid solver (the only translation layer between "a 0/1/2 matrix" and
// "an undirected graph with a start").
//
// A cell is Blocked, Walkable, or Start; exactly one Start cell must exist.
// An edge joins two cells iff they are 4-neighbours (no diagonals — the
// solver never needs eight-connectivity, so no Connectivity option is
// exposed here). Vertex IDs use the fixed "row,col" row-major scheme, so
// downstream packages can parse coordinates back out of an ID without a
// side table.
package gridgraph
