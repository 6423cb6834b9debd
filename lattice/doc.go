// Package lattice treats an N-dimensional grid of cells as an implicit graph.
//
// What:
//
//   - Lattice describes the vertex set (every index vector inside Shape) and
//     the adjacency rule: each cell links to its 2·D axis-aligned neighbors,
//     one unit step down and up along every axis.
//   - Periodic axes wrap: stepping below 0 lands on N-1 and stepping above
//     N-1 lands on 0. Non-periodic axes drop out-of-range neighbors.
//   - Cells are addressed by row-major linear index (last axis fastest), the
//     same layout tensor.Dense uses, so an index doubles as a storage offset.
//
// Complexity:
//
//   - Index/Coordinate/InBounds: O(D).
//   - Neighbors: O(D) per call, no allocation when dst has capacity 2·D.
//
// Errors:
//
//   - ErrEmptyShape: no axes.
//   - ErrBadExtent: an axis with extent <= 0.
//   - ErrPeriodicity: periodicity flags do not match the axis count.
//   - ErrOutOfRange: a point outside the lattice.
//   - ErrNoNeighbors: a cell with no neighbor under the periodicity (only a
//     single-cell lattice without periodic axes).
package lattice
