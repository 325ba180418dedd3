// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; public operations wrap the
// sentinel with their operation tag via matrixErrorf. Tests match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRectangular is returned when the rows of a table differ in length.
	ErrNotRectangular = errors.New("matrix: table is not rectangular")

	// ErrBadShape is returned for a table whose rows hold no values.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned by Inverse for a singular or near-singular matrix.
	ErrSingular = errors.New("matrix: singular matrix")
)

// Operation tags used in error wrapping.
const (
	opNew         = "New"
	opAt          = "At"
	opRow         = "Row"
	opCol         = "Col"
	opRowMap      = "RowMap"
	opCellMap     = "CellMap"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScalar      = "Scalar"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
