package topology

import "errors"

// Sentinel errors for compiling a core.Graph into a dense topology.Graph.
var (
	// ErrStartNotFound indicates the requested start ID has no matching vertex.
	ErrStartNotFound = errors.New("topology: start vertex not found in graph")

	// ErrBadVertexID indicates a vertex ID does not parse as "row,col".
	ErrBadVertexID = errors.New("topology: vertex ID is not a valid row,col coordinate")
)

// Coord is a grid cell's (row, col) position, used for deterministic
// neighbour ordering and for the parity rule (spec.md §4.C).
type Coord struct {
	Row, Col int
}

// Parity returns (row+col) mod 2, the bipartition class of the cell.
func (c Coord) Parity() int {
	return ((c.Row % 2) + (c.Col % 2)) % 2
}

// Graph is a dense, immutable, read-only adjacency compiled from a
// *core.Graph. Vertices are addressed by int32 index 0..N-1.
type Graph struct {
	n       int
	adj     [][]int32 // adj[v] is v's neighbours, sorted by (row,col) ascending
	edgeOf  [][]int32 // edgeOf[v][i] is the dense edge index of (v, adj[v][i])
	numEdge int
	coord   []Coord  // coord[v] is v's grid position
	id      []string // id[v] is the original core.Graph vertex ID
	byID    map[string]int32
}

// N returns the number of vertices.
func (t *Graph) N() int { return t.n }

// Coord returns the (row, col) of vertex v.
func (t *Graph) Coord(v int32) Coord { return t.coord[v] }

// Index returns the dense index for a core.Graph vertex ID.
func (t *Graph) Index(id string) (int32, bool) {
	v, ok := t.byID[id]

	return v, ok
}

// Neighbors returns v's adjacent vertices, sorted by (row,col) ascending.
// The returned slice is shared and must not be mutated by the caller.
func (t *Graph) Neighbors(v int32) []int32 {
	return t.adj[v]
}

// StaticDegree returns the degree of v in the full, uncontracted graph
// (i.e. ignoring any removed-set). Most callers want Degree, which honors
// a removed-set; StaticDegree is used by prune.NewEdgeState to seed each
// vertex's degreeRemaining counter.
func (t *Graph) StaticDegree(v int32) int {
	return len(t.adj[v])
}

// NumEdges returns the number of distinct undirected edges, the size every
// edge-indexed bitset (prune.EdgeState's removed/committed sets) must be
// allocated with.
func (t *Graph) NumEdges() int {
	return t.numEdge
}

// NeighborEdges returns the dense edge index of (v, w) for each w in
// Neighbors(v), in the same order. The returned slice is shared and must
// not be mutated by the caller.
func (t *Graph) NeighborEdges(v int32) []int32 {
	return t.edgeOf[v]
}

// EdgeIndex returns the dense edge index of (u, v) and whether they are
// adjacent at all.
func (t *Graph) EdgeIndex(u, v int32) (int32, bool) {
	for i, w := range t.adj[u] {
		if w == v {
			return t.edgeOf[u][i], true
		}
	}

	return 0, false
}
