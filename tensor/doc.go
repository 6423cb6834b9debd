// SPDX-License-Identifier: MIT

// Package tensor provides a dense N-dimensional grid of numeric values.
//
// What:
//
//   - Dense[T] owns one contiguous buffer in row-major order: the offset of
//     index p under shape s is Σ_i p[i]·Π_{j>i} s[j] (last axis fastest).
//   - Element-wise Add/Sub/Mul/Div/Mod between two grids of identical shape,
//     and the Scalar variants; every operation returns a new grid.
//   - Max/Min reductions, Reshape (same buffer, new index mapping),
//     Clone (deep copy) and Convert (element-wise numeric cast).
//   - Plain tabular ("dat") reading and writing of 2-D grids.
//
// Why:
//
//   - Free-energy surfaces and visitation counts over several collective
//     variables are naturally N-dimensional; the path search addresses them
//     by linear offset, so the layout is part of the contract.
//
// Complexity:
//
//   - New/Clone/Convert/element-wise ops: O(N) time and memory, N = Size().
//   - At/Set/Offset: O(D), D = Dims(). AtOffset/SetOffset: O(1).
//   - Reshape: O(D), no data movement.
//
// Errors:
//
//   - ErrBadShape: empty shape or a non-positive extent.
//   - ErrOutOfRange: index length or component outside the shape.
//   - ErrDimensionMismatch: operands of different shape.
//   - ErrSizeMismatch: Reshape to a different total size, FromSlice with a
//     buffer of the wrong length.
//   - ErrDivideByZero: integer division or modulo by zero.
//   - ErrFormat: unparsable or empty tabular input.
package tensor
