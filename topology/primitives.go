package topology

import "github.com/bits-and-blooms/bitset"

// Degree returns the number of v's neighbours that are not in removed.
// Complexity: O(deg(v)).
func (t *Graph) Degree(removed *bitset.BitSet, v int32) int {
	n := 0
	for _, nb := range t.adj[v] {
		if !removed.Test(uint(nb)) {
			n++
		}
	}

	return n
}

// ComponentsFrom counts the connected components of the subgraph induced by
// every vertex not in removed, plus v itself (spec.md §4.B: "the subgraph
// induced by currently unvisited vertices plus v"). v is treated as alive
// even if the caller's removed set happens to mark it.
// Complexity: O(V + E).
func (t *Graph) ComponentsFrom(removed *bitset.BitSet, v int32) int {
	alive := func(u int32) bool { return u == v || !removed.Test(uint(u)) }

	seen := bitset.New(uint(t.n))
	components := 0

	for start := 0; start < t.n; start++ {
		if !alive(int32(start)) || seen.Test(uint(start)) {
			continue
		}
		components++
		queue := []int32{int32(start)}
		seen.Set(uint(start))
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, w := range t.adj[u] {
				if !alive(w) || seen.Test(uint(w)) {
					continue
				}
				seen.Set(uint(w))
				queue = append(queue, w)
			}
		}
	}

	return components
}

// LeafCountExcluding returns the number of vertices other than exclude that
// are not in removed and have exactly one not-removed neighbour.
// Complexity: O(V + E).
func (t *Graph) LeafCountExcluding(removed *bitset.BitSet, exclude int32) int {
	count := 0
	for v := 0; v < t.n; v++ {
		if int32(v) == exclude || removed.Test(uint(v)) {
			continue
		}
		if t.Degree(removed, int32(v)) == 1 {
			count++
		}
	}

	return count
}
