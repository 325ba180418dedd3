// Package matrix provides an immutable, row-major matrix of float64 values.
//
// The matrix package provides:
//
//   - Matrix: a rectangular table stored in one flat slice (offset = i*cols + j),
//     with no setters; every operation returns a new Matrix.
//   - Construction: New(table, ...Option) from nested rows, or an identity of
//     the configured shape (default 3×3) when the table is empty; Identity(n).
//   - Element-wise kernels: CellMap and RowMap over any number of same-shape
//     operands, and the Add/Sub/AddScalar/SubScalar/MulScalar facades built on them.
//   - Linear algebra: Mul (standard product), Transpose, Determinant, Inverse.
//     Determinant and Inverse delegate the factorisation to gonum/mat.
//   - Iteration: All yields rows in order, Cells yields every value row-major.
//
// Errors:
//
// All failures are sentinel errors from errors.go wrapped with the operation
// name, e.g. "Mul: matrix: dimension mismatch: 2x3 * 4x2". Match them with
// errors.Is. Nothing in the public surface panics on user input; options
// panic only on nonsensical parameters (programmer error).
//
// Numeric policy:
//
// By default New rejects NaN and ±Inf (ErrNaNInf). WithNoValidateNaNInf
// disables the check for the matrix and for every matrix derived from it.
// AllClose compares cell by cell within the epsilon set by WithEpsilon.
package matrix
