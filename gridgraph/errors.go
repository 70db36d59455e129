package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrSizeMismatch indicates a flat vector whose length is not Width×Height.
	ErrSizeMismatch = errors.New("gridgraph: vector length does not match grid size")
	// ErrBadWeight indicates a negative or NaN neighbor weight.
	ErrBadWeight = errors.New("gridgraph: neighbor weight must be non-negative")
)
