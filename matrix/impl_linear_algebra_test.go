package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/stretchr/testify/require"
)

func TestMul(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})    // 2x3
	b := mustNew(t, [][]float64{{7, 8}, {9, 10}, {11, 12}}) // 3x2

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, p.Table())

	// Identity is neutral on both sides.
	left, err := matrix.Identity(2).Mul(a)
	require.NoError(t, err)
	require.True(t, left.Equal(a))
	right, err := a.Mul(matrix.Identity(3))
	require.NoError(t, err)
	require.True(t, right.Equal(a))
}

func TestMul_DimensionMismatch(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustNew(t, [][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}})

	_, err := a.Mul(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.EqualError(t, err, "Mul: matrix: dimension mismatch: 2x3 * 4x2")
}

func TestTranspose(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr := a.Transpose()
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.Table())
	require.True(t, tr.Transpose().Equal(a))

	// (AB)ᵀ = BᵀAᵀ
	b := mustNew(t, [][]float64{{1, 0}, {2, 1}, {0, 3}})
	ab, err := a.Mul(b)
	require.NoError(t, err)
	btat, err := b.Transpose().Mul(a.Transpose())
	require.NoError(t, err)
	require.True(t, ab.Transpose().Equal(btat))
}

func TestDeterminant(t *testing.T) {
	d, err := mustNew(t, [][]float64{{4, 3}, {6, 3}}).Determinant()
	require.NoError(t, err)
	require.InDelta(t, -6.0, d, 1e-12)

	d, err = matrix.Identity(4).Determinant()
	require.NoError(t, err)
	require.InDelta(t, 1.0, d, 1e-12)

	_, err = mustNew(t, [][]float64{{1, 2, 3}}).Determinant()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse(t *testing.T) {
	a := mustNew(t, [][]float64{{4, 7}, {2, 6}})
	inv, err := a.Inverse()
	require.NoError(t, err)
	require.True(t, inv.AllClose(mustNew(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}})), inv.String())

	id, err := a.Mul(inv)
	require.NoError(t, err)
	require.True(t, id.AllClose(matrix.Identity(2)), id.String())

	_, err = mustNew(t, [][]float64{{1, 2}, {2, 4}}).Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = mustNew(t, [][]float64{{1, 2}}).Inverse()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
