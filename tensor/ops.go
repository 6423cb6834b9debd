// SPDX-License-Identifier: MIT

package tensor

import (
	"math"
	"slices"
)

const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opDiv = "Div"
	opMod = "Mod"
)

// isFloat reports whether T is a floating-point type.
func isFloat[T Number]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	}

	return false
}

// modValue is a % b for integers and math.Mod for floats.
func modValue[T Number](a, b T) T {
	switch any(a).(type) {
	case float32, float64:
		return T(math.Mod(float64(a), float64(b)))
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return T(uint64(a) % uint64(b))
	}

	return T(int64(a) % int64(b))
}

// zipWith applies f cell by cell over two grids of identical shape.
func (d *Dense[T]) zipWith(op string, o *Dense[T], f func(a, b T) T) (*Dense[T], error) {
	if !slices.Equal(d.shape, o.shape) {
		return nil, opErrorf(op, ErrDimensionMismatch)
	}
	out := d.Clone()
	for i, b := range o.data {
		out.data[i] = f(out.data[i], b)
	}

	return out, nil
}

// mapWith applies f to every cell with a scalar right operand.
func (d *Dense[T]) mapWith(s T, f func(a, b T) T) *Dense[T] {
	out := d.Clone()
	for i, a := range out.data {
		out.data[i] = f(a, s)
	}

	return out
}

// hasZero reports whether an integer grid contains a zero divisor.
func hasZero[T Number](data []T) bool {
	if isFloat[T]() {
		return false
	}

	return slices.Contains(data, 0)
}

func add[T Number](a, b T) T { return a + b }
func sub[T Number](a, b T) T { return a - b }
func mul[T Number](a, b T) T { return a * b }
func div[T Number](a, b T) T { return a / b }

// Add returns d + o element-wise. Shapes must match.
func (d *Dense[T]) Add(o *Dense[T]) (*Dense[T], error) { return d.zipWith(opAdd, o, add[T]) }

// Sub returns d - o element-wise. Shapes must match.
func (d *Dense[T]) Sub(o *Dense[T]) (*Dense[T], error) { return d.zipWith(opSub, o, sub[T]) }

// Mul returns the element-wise (Hadamard) product. Shapes must match.
func (d *Dense[T]) Mul(o *Dense[T]) (*Dense[T], error) { return d.zipWith(opMul, o, mul[T]) }

// Div returns d / o element-wise. Float grids follow IEEE-754; integer grids
// return ErrDivideByZero if o holds a zero.
func (d *Dense[T]) Div(o *Dense[T]) (*Dense[T], error) {
	if hasZero(o.data) {
		return nil, opErrorf(opDiv, ErrDivideByZero)
	}

	return d.zipWith(opDiv, o, div[T])
}

// Mod returns the element-wise remainder (math.Mod for floats).
func (d *Dense[T]) Mod(o *Dense[T]) (*Dense[T], error) {
	if hasZero(o.data) {
		return nil, opErrorf(opMod, ErrDivideByZero)
	}

	return d.zipWith(opMod, o, modValue[T])
}

// AddScalar returns d + s.
func (d *Dense[T]) AddScalar(s T) *Dense[T] { return d.mapWith(s, add[T]) }

// SubScalar returns d - s.
func (d *Dense[T]) SubScalar(s T) *Dense[T] { return d.mapWith(s, sub[T]) }

// MulScalar returns d * s.
func (d *Dense[T]) MulScalar(s T) *Dense[T] { return d.mapWith(s, mul[T]) }

// DivScalar returns d / s.
func (d *Dense[T]) DivScalar(s T) (*Dense[T], error) {
	if s == 0 && !isFloat[T]() {
		return nil, opErrorf(opDiv, ErrDivideByZero)
	}

	return d.mapWith(s, div[T]), nil
}

// ModScalar returns d mod s.
func (d *Dense[T]) ModScalar(s T) (*Dense[T], error) {
	if s == 0 && !isFloat[T]() {
		return nil, opErrorf(opMod, ErrDivideByZero)
	}

	return d.mapWith(s, modValue[T]), nil
}
