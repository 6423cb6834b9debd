// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Dense grid can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Dense is an N-dimensional row-major grid.
//   - shape holds one positive extent per axis.
//   - strides[i] = Π_{j>i} shape[j]; strides[D-1] == 1.
//   - data has length Π shape and is owned exclusively by the grid.
type Dense[T Number] struct {
	shape   []int
	strides []int
	data    []T
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// validateShape returns the total size for shape or ErrBadShape.
func validateShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	total := 1
	for _, s := range shape {
		if s <= 0 {
			return 0, ErrBadShape
		}
		total *= s
	}

	return total, nil
}

// stridesFor computes row-major strides for a validated shape.
func stridesFor(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}

	return strides
}

// New allocates a grid of the given shape with every cell set to fill.
// Returns ErrBadShape if shape is empty or any extent is <= 0.
// Complexity: O(N).
func New[T Number](shape []int, fill T) (*Dense[T], error) {
	total, err := validateShape(shape)
	if err != nil {
		return nil, denseErrorf(ctxNew, shape, err)
	}
	data := make([]T, total)
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}

	return &Dense[T]{
		shape:   slices.Clone(shape),
		strides: stridesFor(shape),
		data:    data,
	}, nil
}

// FromSlice builds a grid over a copy of data, which must hold exactly
// Π shape values in row-major order.
func FromSlice[T Number](shape []int, data []T) (*Dense[T], error) {
	total, err := validateShape(shape)
	if err != nil {
		return nil, denseErrorf(ctxNew, shape, err)
	}
	if len(data) != total {
		return nil, denseErrorf(ctxNew, shape, fmt.Errorf("%w: have %d values, want %d", ErrSizeMismatch, len(data), total))
	}

	return &Dense[T]{
		shape:   slices.Clone(shape),
		strides: stridesFor(shape),
		data:    slices.Clone(data),
	}, nil
}

// Convert returns a deep copy of src with every element cast to U.
// Float to integer conversion truncates toward zero, as Go conversions do.
func Convert[U, T Number](src *Dense[T]) *Dense[U] {
	data := make([]U, len(src.data))
	for i, v := range src.data {
		data[i] = U(v)
	}

	return &Dense[U]{
		shape:   slices.Clone(src.shape),
		strides: slices.Clone(src.strides),
		data:    data,
	}
}

// Clone returns an independent deep copy.
func (d *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{
		shape:   slices.Clone(d.shape),
		strides: slices.Clone(d.strides),
		data:    slices.Clone(d.data),
	}
}

// Shape returns a copy of the per-axis extents.
func (d *Dense[T]) Shape() []int { return slices.Clone(d.shape) }

// Dims returns the number of axes.
func (d *Dense[T]) Dims() int { return len(d.shape) }

// Size returns the total number of cells.
func (d *Dense[T]) Size() int { return len(d.data) }

// Data returns the backing buffer in row-major order. The slice aliases the
// grid: writes through it are visible to the grid.
func (d *Dense[T]) Data() []T { return d.data }

// Offset maps an index vector to its linear offset.
// Returns ErrOutOfRange if len(idx) != Dims() or a component is outside the shape.
func (d *Dense[T]) Offset(idx []int) (int, error) {
	if len(idx) != len(d.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for i, p := range idx {
		if p < 0 || p >= d.shape[i] {
			return 0, ErrOutOfRange
		}
		off += p * d.strides[i]
	}

	return off, nil
}

// Unravel maps a linear offset back to its index vector.
func (d *Dense[T]) Unravel(offset int) ([]int, error) {
	if offset < 0 || offset >= len(d.data) {
		return nil, denseErrorf(ctxUnravel, []int{offset}, ErrOutOfRange)
	}
	idx := make([]int, len(d.shape))
	for i, s := range d.strides {
		idx[i] = offset / s
		offset %= s
	}

	return idx, nil
}

// At returns the value at idx.
func (d *Dense[T]) At(idx []int) (T, error) {
	off, err := d.Offset(idx)
	if err != nil {
		return 0, denseErrorf(ctxAt, idx, err)
	}

	return d.data[off], nil
}

// Set stores v at idx.
func (d *Dense[T]) Set(idx []int, v T) error {
	off, err := d.Offset(idx)
	if err != nil {
		return denseErrorf(ctxSet, idx, err)
	}
	d.data[off] = v

	return nil
}

// AtOffset returns the value at a linear offset without validation.
// The caller guarantees 0 <= offset < Size().
func (d *Dense[T]) AtOffset(offset int) T { return d.data[offset] }

// SetOffset stores v at a linear offset without validation.
func (d *Dense[T]) SetOffset(offset int, v T) { d.data[offset] = v }

// Fill sets every cell to v.
func (d *Dense[T]) Fill(v T) {
	for i := range d.data {
		d.data[i] = v
	}
}

// Max returns the largest element.
func (d *Dense[T]) Max() T { return slices.Max(d.data) }

// Min returns the smallest element.
func (d *Dense[T]) Min() T { return slices.Min(d.data) }

// Reshape reinterprets the same buffer under newShape. Data is not moved;
// only the index-to-offset mapping changes.
// Returns ErrBadShape for an invalid shape and ErrSizeMismatch if the total size differs.
func (d *Dense[T]) Reshape(newShape []int) error {
	total, err := validateShape(newShape)
	if err != nil {
		return denseErrorf(ctxReshape, newShape, err)
	}
	if total != len(d.data) {
		return denseErrorf(ctxReshape, newShape, ErrSizeMismatch)
	}
	d.shape = slices.Clone(newShape)
	d.strides = stridesFor(newShape)

	return nil
}

// String renders the grid as nested brackets, last axis innermost.
func (d *Dense[T]) String() string {
	var sb strings.Builder
	d.format(&sb, 0, 0)

	return sb.String()
}

func (d *Dense[T]) format(sb *strings.Builder, axis, base int) {
	sb.WriteString("[")
	for i := 0; i < d.shape[axis]; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		off := base + i*d.strides[axis]
		if axis == len(d.shape)-1 {
			fmt.Fprintf(sb, "%v", d.data[off])
			continue
		}
		d.format(sb, axis+1, off)
	}
	sb.WriteString("]")
}
