// SPDX-License-Identifier: MIT

// Package matrix - immutable row-major storage and safe accessors.
//
// Purpose:
//   - Keep one flat buffer per matrix with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors, never panic.
//   - Hand out copies only (Row, Col, Table), so a Matrix never changes after New.
//
// Complexity quicksheet:
//   - New: O(r*c); At: O(1); Row/Col: O(c)/O(r); Table: O(r*c).
package matrix

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is an immutable rectangular table of float64 values.
//   - r, c hold the dimensions (both > 0).
//   - data holds r*c values in row-major order.
//   - validateNaNInf and eps are the numeric policy carried to derived matrices.
type Matrix struct {
	r, c           int
	data           []float64
	validateNaNInf bool
	eps            float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New builds a Matrix from a table of rows.
//
// Implementation:
//   - Stage 1: an empty table yields the identity of the configured shape
//     (WithShape, default 3×3): ones where i == j, zeros elsewhere.
//   - Stage 2: every row must have the length of the first (ErrNotRectangular),
//     and that length must be positive (ErrBadShape).
//   - Stage 3: copy cells into the flat buffer, rejecting NaN/±Inf (ErrNaNInf)
//     unless WithNoValidateNaNInf is given.
//
// The table is copied; later changes to it do not affect the Matrix.
//
// Complexity: Time O(r*c), Space O(r*c).
func New(table [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if len(table) == 0 {
		return identity(o.rows, o.cols, o), nil
	}

	rows, cols := len(table), len(table[0])
	for _, row := range table {
		if len(row) != cols {
			return nil, matrixErrorf(opNew, ErrNotRectangular)
		}
	}
	if cols == 0 {
		return nil, matrixErrorf(opNew, ErrBadShape)
	}

	data := make([]float64, 0, rows*cols)
	for _, row := range table {
		data = append(data, row...)
	}
	m := &Matrix{r: rows, c: cols, data: data, validateNaNInf: o.validateNaNInf, eps: o.eps}
	if err := m.checkFinite(); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	return m, nil
}

// Identity returns the n×n identity matrix. Panics if n <= 0.
func Identity(n int, opts ...Option) *Matrix {
	if n <= 0 {
		panic(panicShapeInvalid)
	}
	return identity(n, n, gatherOptions(opts...))
}

func identity(rows, cols int, o Options) *Matrix {
	m := &Matrix{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: o.validateNaNInf, eps: o.eps}
	for i := 0; i < min(rows, cols); i++ {
		m.data[i*cols+i] = 1
	}
	return m
}

// derive allocates an r×c zero matrix that inherits m's numeric policy.
func (m *Matrix) derive(r, c int) *Matrix {
	return &Matrix{r: r, c: c, data: make([]float64, r*c), validateNaNInf: m.validateNaNInf, eps: m.eps}
}

// checkFinite enforces the finite-only policy over the whole buffer.
func (m *Matrix) checkFinite() error {
	if !m.validateNaNInf {
		return nil
	}
	for k, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("(%d,%d): %w", k/m.c, k%m.c, ErrNaNInf)
		}
	}
	return nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// Shape returns Rows() and Cols() in one call.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports Rows() == Cols().
func (m *Matrix) IsSquare() bool { return m.r == m.c }

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", opAt, row, col, ErrOutOfRange)
	}
	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("%s(%d): %w", opRow, i, ErrOutOfRange)
	}
	return m.row(i), nil
}

func (m *Matrix) row(i int) []float64 {
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("%s(%d): %w", opCol, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}
	return out, nil
}

// Table returns the matrix as freshly allocated nested rows.
func (m *Matrix) Table() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = m.row(i)
	}
	return out
}

// All yields (index, row copy) pairs in row order.
func (m *Matrix) All() iter.Seq2[int, []float64] {
	return func(yield func(int, []float64) bool) {
		for i := 0; i < m.r; i++ {
			if !yield(i, m.row(i)) {
				return
			}
		}
	}
}

// Cells yields every value in row-major order, ignoring row boundaries.
func (m *Matrix) Cells() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Equal reports exact equality of shape and values.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for k, v := range m.data {
		if v != other.data[k] {
			return false
		}
	}
	return true
}

// AllClose reports equal shapes and |m[i,j] - other[i,j]| <= eps for every
// cell, with eps taken from m (WithEpsilon, default DefaultEpsilon).
func (m *Matrix) AllClose(other *Matrix) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for k, v := range m.data {
		if math.Abs(v-other.data[k]) > m.eps {
			return false
		}
	}
	return true
}

// String renders one bracketed row per line: "[1, 2]\n[3, 4]\n".
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}
	return sb.String()
}
