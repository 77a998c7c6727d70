// Package prune implements component D of the Hamiltonian grid solver: the
// two pruning kernels run against branch-local state on every pop of the
// search driver's frame stack.
//
// ForcedMove propagates degree-1/degree-2 chains: while current has exactly
// one unvisited neighbour it advances automatically, and any neighbour that
// would otherwise become an unreachable dead end is either walked into or
// fixed as the branch's finish.
//
// Eliminate runs the saturate/prune fixpoint over a branch-local EdgeState,
// committing edges that must lie on the path and removing edges that
// cannot, then walks along any committed edge leading out of current.
//
// EdgeState is always owned by the caller — passed in, cloned on fork,
// discarded on backtrack — so that two branches never alias the same
// counters or bitsets.
package prune
