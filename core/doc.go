// Package core defines the Graph, Vertex, and Edge types shared by the rest
// of this module: an in-memory, thread-safe, undirected simple graph.
//
// Graph is intentionally narrow. The grid-Hamiltonian-path domain this
// module serves never needs directed edges, weights, self-loops, or
// parallel edges, so those knobs are not exposed here — a fully
// configurable graph would just be unexercised surface. What survives is
// the part every caller does need: safe concurrent construction and
// read-only querying of a graph that, once built, never changes.
//
// Concurrency: separate sync.RWMutex locks guard vertices (muVert) and
// edges/adjacency (muEdgeAdj), so reads never block on each other and a
// caller may safely hand a *Graph to multiple goroutines once built.
package core
