package render

import (
	"bytes"
	"fmt"

	"github.com/gridwalk/hampath"
	"github.com/gridwalk/hampath/gridgraph"
)

// ASCII renders a grid and the path found on it as a row-wise text dump:
// blocked cells print as '#', walkable cells not on the path print as '.',
// and each path cell prints its 0-based step number in base 36 (0-9 then
// a-z), wrapping past 35 back to '0' — the exact step count is still
// recoverable from path itself, this is a picture, not an encoding.
type ASCII struct{}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// Render implements PathRenderer. finish is unused: ASCII already recovers
// it as path[len(path)-1]. start is only consulted when path is empty, so a
// caller can still render an unsolved instance's lone start cell.
func (ASCII) Render(matrix [][]gridgraph.Cell, path []hampath.Vertex, start, finish hampath.Vertex) ([]byte, error) {
	_ = finish
	step := make(map[hampath.Vertex]int, len(path))
	for i, v := range path {
		step[v] = i
	}
	if len(path) == 0 {
		step[start] = 0
	}

	var buf bytes.Buffer
	for r, row := range matrix {
		line := make([]byte, 0, len(row))
		for c, cell := range row {
			if s, onPath := step[hampath.Vertex{Row: r, Col: c}]; onPath {
				line = append(line, base36[s%len(base36)])
				continue
			}
			switch cell {
			case gridgraph.Blocked:
				line = append(line, '#')
			default:
				line = append(line, '.')
			}
		}
		if _, err := fmt.Fprintln(&buf, string(line)); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}
