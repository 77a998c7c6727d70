// Package feasibility is component C of the Hamiltonian grid solver: the
// oracle that rejects provably-impossible instances before the search
// driver spends any time on them, and that prunes hopeless branches mid
// search.
//
// StaticCheck runs once per solve, before the first frame is pushed, and
// implements the five checks of spec.md §4.C: connectivity, leaf count
// (fixing a forced finish candidate when exactly one extra leaf exists),
// parity, start-not-articulation, and "every articulation point splits the
// graph into at most two pieces". IncrementalCheck implements the
// biconnected-component rule used mid search by the two validation
// strategies and by the optimized strategy: a BCC containing start may
// have at most one articulation point; any other BCC, at most two.
package feasibility
