package grid

import "errors"

var (
	// ErrInvalidDimensions indicates a grid with zero (or negative) width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
