package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeValue indicates a negative cell value, which would make the cost negative.
	ErrNegativeValue = errors.New("gridgraph: cell values must be non-negative")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinates out of bounds")
)
