package gridgraph

import "errors"

// Sentinel errors for gridgraph construction.
var (
	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input matrix must have at least one row and one column")

	// ErrNonRectangular indicates one or more rows differ in length from the first row.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")

	// ErrInvalidStart indicates zero or more than one Start cell was found.
	ErrInvalidStart = errors.New("gridgraph: exactly one start cell is required")

	// ErrInvalidCell indicates a matrix entry outside {0,1,2}.
	ErrInvalidCell = errors.New("gridgraph: cell value must be 0 (blocked), 1 (walkable), or 2 (start)")
)
