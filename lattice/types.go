package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrEmptyShape indicates a lattice with no axes.
	ErrEmptyShape = errors.New("lattice: shape must have at least one axis")
	// ErrBadExtent indicates an axis extent <= 0.
	ErrBadExtent = errors.New("lattice: every axis extent must be positive")
	// ErrPeriodicity indicates periodicity flags of the wrong length.
	ErrPeriodicity = errors.New("lattice: periodicity flags must match the axis count")
	// ErrOutOfRange indicates a point or index outside the lattice.
	ErrOutOfRange = errors.New("lattice: point out of range")
	// ErrNoNeighbors indicates a cell without any adjacent cell.
	ErrNoNeighbors = errors.New("lattice: no adjacent point exists")
)

// Point is an integer index vector identifying one cell.
type Point []int

// Lattice is an immutable N-dimensional lattice with per-axis periodicity.
// strides follow row-major order; size is the product of shape.
type Lattice struct {
	shape    []int
	periodic []bool
	strides  []int
	size     int
}
