package matrix_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/stretchr/testify/require"
)

// mustNew builds a Matrix or fails the test.
func mustNew(t testing.TB, table [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(table, opts...)
	require.NoError(t, err)
	return m
}

func TestNew_EmptyTableIsIdentity(t *testing.T) {
	m := mustNew(t, nil)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.True(t, m.Equal(matrix.Identity(3)))

	rect := mustNew(t, [][]float64{}, matrix.WithShape(2, 3))
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}}, rect.Table())
	require.False(t, rect.IsSquare())
}

func TestNew_Validation(t *testing.T) {
	_, err := matrix.New([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrNotRectangular)

	_, err = matrix.New([][]float64{{}, {}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.New([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

func TestNew_CopiesInput(t *testing.T) {
	table := [][]float64{{1, 2}, {3, 4}}
	m := mustNew(t, table)
	table[0][0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	row, err := m.Row(0)
	require.NoError(t, err)
	row[1] = 99
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Table())
}

func TestAccessors(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5}, col)
	_, err = m.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestIteration(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	var rows [][]float64
	for i, row := range m.All() {
		require.Equal(t, len(rows), i)
		rows = append(rows, row)
	}
	require.Equal(t, m.Table(), rows)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, slices.Collect(m.Cells()))
}

func TestEqualAndAllClose(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{1, 2}, {3, 4 + 1e-12}})

	require.False(t, a.Equal(b))
	require.True(t, a.AllClose(b))
	require.False(t, a.AllClose(matrix.Identity(2)))
	require.False(t, a.AllClose(matrix.Identity(3)))

	strict := mustNew(t, a.Table(), matrix.WithEpsilon(0))
	require.False(t, strict.AllClose(b))
	require.True(t, strict.AllClose(a))
}

func TestString(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2}, {3, 4.5}})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { matrix.WithShape(0, 3) })
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.Identity(0) })
}
