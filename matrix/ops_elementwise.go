// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the two mapping kernels (CellMap, RowMap) and the element-wise
//     facades built on them (Add, Sub, AddScalar, SubScalar, MulScalar).
//   - Keep loops deterministic: flat 0..n-1 for cells, i = 0..r-1 for rows.
//
// Every result inherits the receiver's numeric policy; a mapping function
// that produces NaN/±Inf under the finite-only policy yields ErrNaNInf.

package matrix

// CellMap applies f to corresponding cells of m and others, which must all
// share m's shape. f receives one value per operand, m's first.
//
// Implementation:
//   - Stage 1: validateSameShape over others.
//   - Stage 2: single flat pass; the argument buffer is reused across cells.
//   - Stage 3: enforce the numeric policy on the result.
//
// Complexity: Time O(r*c*(k+1)) for k others, Space O(r*c).
func (m *Matrix) CellMap(f func(vals ...float64) float64, others ...*Matrix) (*Matrix, error) {
	return m.cellMap(opCellMap, f, others)
}

// cellMap is the CellMap kernel; errors are tagged once with op.
func (m *Matrix) cellMap(op string, f func(vals ...float64) float64, others []*Matrix) (*Matrix, error) {
	if err := validateSameShape(m, others); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out := m.derive(m.r, m.c)
	args := make([]float64, len(others)+1)
	for k, v := range m.data {
		args[0] = v
		for n, o := range others {
			args[n+1] = o.data[k]
		}
		out.data[k] = f(args...)
	}
	if err := out.checkFinite(); err != nil {
		return nil, matrixErrorf(op, err)
	}
	return out, nil
}

// RowMap applies f to corresponding rows of m and others (same shape as m)
// and assembles the returned rows into a new Matrix. f gets copies of the
// rows, m's first. The rows f returns must share one positive length, which
// may differ from m.Cols() (ErrNotRectangular / ErrBadShape otherwise).
//
// Complexity: Time O(r*c*(k+1)) plus the cost of f.
func (m *Matrix) RowMap(f func(rows ...[]float64) []float64, others ...*Matrix) (*Matrix, error) {
	if err := validateSameShape(m, others); err != nil {
		return nil, matrixErrorf(opRowMap, err)
	}
	table := make([][]float64, m.r)
	args := make([][]float64, len(others)+1)
	for i := 0; i < m.r; i++ {
		args[0] = m.row(i)
		for n, o := range others {
			args[n+1] = o.row(i)
		}
		table[i] = f(args...)
	}
	out, err := New(table, m.policy()...)
	if err != nil {
		return nil, matrixErrorf(opRowMap, err)
	}
	return out, nil
}

// policy returns options that reproduce m's numeric policy.
func (m *Matrix) policy() []Option {
	opts := []Option{WithEpsilon(m.eps)}
	if !m.validateNaNInf {
		opts = append(opts, WithNoValidateNaNInf())
	}
	return opts
}

// Add returns m + other cell by cell.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	return m.cellMap(opAdd, func(v ...float64) float64 { return v[0] + v[1] }, []*Matrix{other})
}

// Sub returns m - other cell by cell.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	return m.cellMap(opSub, func(v ...float64) float64 { return v[0] - v[1] }, []*Matrix{other})
}

// AddScalar returns m with k added to every cell.
func (m *Matrix) AddScalar(k float64) (*Matrix, error) {
	return m.scalar(func(v float64) float64 { return v + k })
}

// SubScalar returns m with k subtracted from every cell.
func (m *Matrix) SubScalar(k float64) (*Matrix, error) {
	return m.scalar(func(v float64) float64 { return v - k })
}

// MulScalar returns m with every cell multiplied by k.
func (m *Matrix) MulScalar(k float64) (*Matrix, error) {
	return m.scalar(func(v float64) float64 { return v * k })
}

// scalar maps a unary function; errors only if the result breaks the numeric policy.
func (m *Matrix) scalar(f func(float64) float64) (*Matrix, error) {
	return m.cellMap(opScalar, func(v ...float64) float64 { return f(v[0]) }, nil)
}
