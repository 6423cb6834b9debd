package lattice

import (
	"fmt"
	"slices"
)

// New builds a lattice of the given shape. periodic[i] enables wraparound
// on axis i. Both slices are copied.
// Returns ErrEmptyShape, ErrBadExtent or ErrPeriodicity.
func New(shape []int, periodic []bool) (*Lattice, error) {
	if len(shape) == 0 {
		return nil, ErrEmptyShape
	}
	if len(periodic) != len(shape) {
		return nil, fmt.Errorf("%w: %d flags for %d axes", ErrPeriodicity, len(periodic), len(shape))
	}
	strides := make([]int, len(shape))
	size := 1
	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] <= 0 {
			return nil, fmt.Errorf("%w: axis %d has extent %d", ErrBadExtent, i, shape[i])
		}
		strides[i] = size
		size *= shape[i]
	}

	return &Lattice{
		shape:    slices.Clone(shape),
		periodic: slices.Clone(periodic),
		strides:  strides,
		size:     size,
	}, nil
}

// Dims returns the number of axes.
func (l *Lattice) Dims() int { return len(l.shape) }

// Shape returns a copy of the per-axis extents.
func (l *Lattice) Shape() []int { return slices.Clone(l.shape) }

// Size returns the number of cells.
func (l *Lattice) Size() int { return l.size }

// Periodic reports whether axis wraps around.
func (l *Lattice) Periodic(axis int) bool { return l.periodic[axis] }

// InBounds reports whether p has one component per axis, each inside the shape.
func (l *Lattice) InBounds(p Point) bool {
	if len(p) != len(l.shape) {
		return false
	}
	for i, c := range p {
		if c < 0 || c >= l.shape[i] {
			return false
		}
	}

	return true
}

// Index maps p to its row-major linear index.
func (l *Lattice) Index(p Point) (int, error) {
	if !l.InBounds(p) {
		return 0, fmt.Errorf("%w: %v not in %v", ErrOutOfRange, p, l.shape)
	}
	idx := 0
	for i, c := range p {
		idx += c * l.strides[i]
	}

	return idx, nil
}

// Coordinate converts a row-major index back to its point.
// The caller guarantees 0 <= idx < Size().
func (l *Lattice) Coordinate(idx int) Point {
	p := make(Point, len(l.shape))
	for i, s := range l.strides {
		p[i] = idx / s
		idx %= s
	}

	return p
}

// axisCoord extracts the component of idx along axis.
func (l *Lattice) axisCoord(idx, axis int) int {
	return (idx / l.strides[axis]) % l.shape[axis]
}

// Neighbors appends the indices adjacent to idx to dst and returns it.
// Order is fixed: for axis 0..D-1, the decrementing neighbor then the
// incrementing one. Out-of-range steps wrap on periodic axes and are
// omitted otherwise. A periodic axis of extent 1 or 2 may yield idx itself
// or the same neighbor twice.
// Returns ErrNoNeighbors when nothing is adjacent.
func (l *Lattice) Neighbors(idx int, dst []int) ([]int, error) {
	dst = dst[:0]
	for axis, n := range l.shape {
		c := l.axisCoord(idx, axis)
		stride := l.strides[axis]

		// decrementing side
		switch {
		case c-1 >= 0:
			dst = append(dst, idx-stride)
		case l.periodic[axis]:
			dst = append(dst, idx+(n-1-c)*stride)
		}

		// incrementing side
		switch {
		case c+1 <= n-1:
			dst = append(dst, idx+stride)
		case l.periodic[axis]:
			dst = append(dst, idx-c*stride)
		}
	}
	if len(dst) == 0 {
		return dst, fmt.Errorf("%w: %v", ErrNoNeighbors, l.Coordinate(idx))
	}

	return dst, nil
}

// Adjacent returns the neighbor points of p in the same order as Neighbors.
func (l *Lattice) Adjacent(p Point) ([]Point, error) {
	idx, err := l.Index(p)
	if err != nil {
		return nil, err
	}
	nbrs, err := l.Neighbors(idx, make([]int, 0, 2*len(l.shape)))
	if err != nil {
		return nil, err
	}
	out := make([]Point, len(nbrs))
	for i, n := range nbrs {
		out[i] = l.Coordinate(n)
	}

	return out, nil
}
