// SPDX-License-Identifier: MIT
// Package matrix - linear algebra kernels: product, transpose, determinant, inverse.
//
// Purpose:
//   - Mul and Transpose are plain deterministic loops over the flat buffer.
//   - Determinant and Inverse hand the factorisation to gonum/mat (LU with
//     partial pivoting), converting at the boundary in both directions.
//
// Notes:
//   - Results are fresh matrices; operands are never mutated.
//   - gonum's Condition error (singular or near-singular input) maps to ErrSingular.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvgeom"
)

// Mul returns the standard product m × other, cell (i,j) = Σ_k m[i,k]*other[k,j].
//
// Implementation:
//   - Stage 1: validateMulCompatible (m.Cols == other.Rows); the error reports
//     both shapes, e.g. "Mul: matrix: dimension mismatch: 2x3 * 4x2".
//   - Stage 2: i→k→j loop order so both inner reads walk contiguous memory.
//
// Complexity: Time O(r*n*c), Space O(r*c).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if err := validateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := m.derive(m.r, other.c)
	for i := 0; i < m.r; i++ {
		dst := out.data[i*other.c : (i+1)*other.c]
		for k := 0; k < m.c; k++ {
			a := m.data[i*m.c+k]
			src := other.data[k*other.c : (k+1)*other.c]
			for j, b := range src {
				dst[j] += a * b
			}
		}
	}
	if err := out.checkFinite(); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix) Transpose() *Matrix {
	out := m.derive(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}
	return out
}

// Determinant returns det(m). Requires a square matrix (ErrNonSquare).
func (m *Matrix) Determinant() (float64, error) {
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	return mat.Det(m.dense()), nil
}

// Inverse returns m⁻¹ such that m × m⁻¹ ≈ I.
//
// Errors:
//   - ErrNonSquare for a non-square matrix.
//   - ErrSingular when gonum reports the matrix singular or too ill-conditioned.
func (m *Matrix) Inverse() (*Matrix, error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var inv mat.Dense
	if err := inv.Inverse(m.dense()); err != nil {
		lvgeom.Logger().Debug("matrix: inverse failed", "rows", m.r, "cols", m.c, "cause", err)
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	out := m.derive(m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[i*m.c+j] = inv.At(i, j)
		}
	}
	return out, nil
}

// dense copies m into a gonum matrix so gonum never aliases m's buffer.
func (m *Matrix) dense() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)
	return mat.NewDense(m.r, m.c, buf)
}
