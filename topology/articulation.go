package topology

import "github.com/bits-and-blooms/bitset"

// BCC is one biconnected component of an induced subgraph: the vertex set
// found between two articulation-point boundaries (or a whole component,
// if it contains no internal articulation point), plus which of its
// vertices are themselves articulation points of the enclosing graph.
type BCC struct {
	Vertices           []int32
	ArticulationPoints []int32
}

// tarjanFrame is one explicit-stack call frame for the iterative DFS below.
// idx walks the neighbour list of u one edge at a time; children counts
// DFS-tree children of u, needed only to special-case root articulation.
type tarjanFrame struct {
	u        int32
	idx      int
	children int
}

// ArticulationPoints finds the cut vertices and biconnected components of
// the subgraph induced by every vertex not in removed, plus keepAlive
// itself (spec.md §4.B: "the subgraph induced by currently unvisited
// vertices plus v") — keepAlive is treated as present even if removed
// happens to mark it, exactly like ComponentsFrom's v parameter. Tarjan's
// disc/low scheme runs over an explicit frame stack and an explicit edge
// stack that emits one BCC each time a component boundary is discovered —
// grids routinely exceed 400 vertices, well past what a naive recursive
// DFS should be trusted with.
// Complexity: O(V + E).
func (t *Graph) ArticulationPoints(removed *bitset.BitSet, keepAlive int32) (*bitset.BitSet, []BCC) {
	alive := func(u int32) bool { return u == keepAlive || !removed.Test(uint(u)) }
	n := t.n
	disc := make([]int, n)
	low := make([]int, n)
	visited := make([]bool, n)
	parent := make([]int32, n)
	for i := range parent {
		parent[i] = -1
	}
	timer := 0
	ap := bitset.New(uint(n))
	var bccs []BCC
	var edgeStack [][2]int32

	popBCC := func(boundary [2]int32) BCC {
		seen := make(map[int32]struct{})
		for {
			e := edgeStack[len(edgeStack)-1]
			edgeStack = edgeStack[:len(edgeStack)-1]
			seen[e[0]] = struct{}{}
			seen[e[1]] = struct{}{}
			if e == boundary {
				break
			}
		}
		verts := make([]int32, 0, len(seen))
		for v := range seen {
			verts = append(verts, v)
		}

		return BCC{Vertices: verts}
	}

	for root := int32(0); root < int32(n); root++ {
		if !alive(root) || visited[root] {
			continue
		}
		visited[root] = true
		disc[root] = timer
		low[root] = timer
		timer++
		stack := []tarjanFrame{{u: root}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			u := top.u
			nbrs := t.adj[u]

			if top.idx >= len(nbrs) {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					break
				}
				parentFrame := &stack[len(stack)-1]
				pu := parentFrame.u
				if low[u] < low[pu] {
					low[pu] = low[u]
				}
				if low[u] >= disc[pu] {
					isRoot := parent[pu] == -1
					if isRoot {
						if parentFrame.children > 1 {
							ap.Set(uint(pu))
						}
					} else {
						ap.Set(uint(pu))
					}
					bccs = append(bccs, popBCC([2]int32{pu, u}))
				}

				continue
			}

			v := nbrs[top.idx]
			top.idx++
			if !alive(v) {
				continue
			}
			if !visited[v] {
				visited[v] = true
				parent[v] = u
				top.children++
				disc[v] = timer
				low[v] = timer
				timer++
				edgeStack = append(edgeStack, [2]int32{u, v})
				stack = append(stack, tarjanFrame{u: v})
			} else if v != parent[u] && disc[v] < disc[u] {
				if disc[v] < low[u] {
					low[u] = disc[v]
				}
				edgeStack = append(edgeStack, [2]int32{u, v})
			}
		}
	}

	for i := range bccs {
		var apMembers []int32
		for _, v := range bccs[i].Vertices {
			if ap.Test(uint(v)) {
				apMembers = append(apMembers, v)
			}
		}
		bccs[i].ArticulationPoints = apMembers
	}

	return ap, bccs
}
