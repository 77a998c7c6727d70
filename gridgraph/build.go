package gridgraph

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/gridwalk/hampath/core"
)

// idFmt is the fixed, documented coordinate ID scheme: "row,col", row-major.
const idFmt = "%d,%d"

// VertexID formats the coordinate ID for cell (row, col).
func VertexID(row, col int) string {
	return fmt.Sprintf(idFmt, row, col)
}

// neighborOffsets are the four orthogonal moves; diagonals are an explicit
// non-goal of this domain.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Build translates a rectangular matrix of Cells into an undirected,
// unweighted *core.Graph plus the ID of the single Start vertex.
//
// Contract: one vertex per cell with value != Blocked; an edge joins two
// vertices iff they are 4-neighbours in M. Fails with ErrEmptyGrid,
// ErrNonRectangular, ErrInvalidCell, or ErrInvalidStart on malformed input.
// Complexity: O(R*C) time and memory.
func Build(matrix [][]Cell) (*core.Graph, string, error) {
	rows := len(matrix)
	if rows == 0 || len(matrix[0]) == 0 {
		return nil, "", ErrEmptyGrid
	}
	cols := len(matrix[0])

	var badRows *multierror.Error
	for r, row := range matrix {
		if len(row) != cols {
			badRows = multierror.Append(badRows, fmt.Errorf("row %d has length %d, want %d", r, len(row), cols))
		}
	}
	if badRows != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNonRectangular, badRows)
	}

	g := core.NewGraph()
	startID := ""
	startCount := 0

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			switch matrix[r][c] {
			case Blocked:
				continue
			case Start:
				startCount++
				startID = VertexID(r, c)
			case Walkable:
				// fallthrough to AddVertex below
			default:
				return nil, "", fmt.Errorf("%w: at (%d,%d) got %d", ErrInvalidCell, r, c, matrix[r][c])
			}
			if err := g.AddVertex(VertexID(r, c)); err != nil {
				return nil, "", fmt.Errorf("gridgraph: AddVertex(%d,%d): %w", r, c, err)
			}
		}
	}
	if startCount != 1 {
		return nil, "", ErrInvalidStart
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if matrix[r][c] == Blocked {
				continue
			}
			u := VertexID(r, c)
			// Only emit Down and Right to avoid adding each undirected edge twice.
			for _, d := range [2][2]int{{1, 0}, {0, 1}} {
				nr, nc := r+d[0], c+d[1]
				if nr >= rows || nc >= cols || matrix[nr][nc] == Blocked {
					continue
				}
				v := VertexID(nr, nc)
				if err := g.AddEdge(u, v); err != nil {
					return nil, "", fmt.Errorf("gridgraph: AddEdge(%s,%s): %w", u, v, err)
				}
			}
		}
	}

	return g, startID, nil
}

// BuildFromInts is a convenience adapter for callers holding a raw {0,1,2}
// int matrix (e.g. a future image-segmentation collaborator, or tests that
// write grids as int literals).
func BuildFromInts(matrix [][]int) (*core.Graph, string, error) {
	cells := make([][]Cell, len(matrix))
	for r, row := range matrix {
		cells[r] = make([]Cell, len(row))
		for c, v := range row {
			cells[r][c] = Cell(v)
		}
	}

	return Build(cells)
}
