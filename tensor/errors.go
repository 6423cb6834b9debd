// SPDX-License-Identifier: MIT

package tensor

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "tensor: ..."; call sites wrap with %w so
// callers match with errors.Is.
var (
	// ErrBadShape is returned when a shape is empty or has an extent <= 0.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates an index vector of the wrong length or with a
	// component outside [0, shape[d]-1].
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates two operands of different shape.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrSizeMismatch indicates a total-size change where none is allowed.
	ErrSizeMismatch = errors.New("tensor: total size mismatch")

	// ErrDivideByZero is returned by integer Div/Mod with a zero divisor.
	ErrDivideByZero = errors.New("tensor: integer division by zero")

	// ErrFormat indicates malformed tabular input.
	ErrFormat = errors.New("tensor: malformed input")
)

const (
	ctxNew     = "New"
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxReshape = "Reshape"
	ctxUnravel = "Unravel"
)

// denseErrorf wraps err with the Dense method and the offending index.
func denseErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Dense.%s(%v): %w", method, idx, err)
}

// opErrorf wraps err with an element-wise operation tag.
func opErrorf(op string, err error) error {
	return fmt.Errorf("Dense.%s: %w", op, err)
}
