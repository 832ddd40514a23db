package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates a requested matrix has non-positive
	// rows or columns.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside the
	// matrix's bounds.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")
)
