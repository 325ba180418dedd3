package vector_test

import (
	"testing"

	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/require"
)

func TestVector2d_Basics(t *testing.T) {
	v := vector.Vec2(3, 4)
	require.Equal(t, 5.0, v.Length())
	require.Equal(t, 2, v.Dim())
	require.Equal(t, vector.Tuple2{3, 4}, v.Tuple())
	require.True(t, v.Equal(vector.Tuple2{3, 4}))
	require.Equal(t, vector.Vec3(3, 4, 1), v.To3D(1))
	require.Equal(t, v, vector.Vec3(3, 4, 9).XY())
	require.Equal(t, "Vector2d(3, 4)", v.String())

	u, err := v.Normalized()
	require.NoError(t, err)
	require.InDelta(t, 1.0, u.Length(), eps)

	_, err = vector.Vec2(0, 0).Normalized()
	require.ErrorIs(t, err, vector.ErrZeroLength)
}

func TestVector2d_Accessors(t *testing.T) {
	v := vector.Vec2(45, -453)

	y, err := v.Component("y")
	require.NoError(t, err)
	require.Equal(t, -453.0, y)

	_, err = v.Component("z")
	require.ErrorIs(t, err, vector.ErrUnknownAxis)

	x, err := v.At(-2)
	require.NoError(t, err)
	require.Equal(t, 45.0, x)

	_, err = v.At(2)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	w, err := v.WithComponent("y", 1)
	require.NoError(t, err)
	require.Equal(t, vector.Vec2(45, 1), w)
	require.Equal(t, vector.Vec2(45, -453), v)

	_, err = v.WithComponent("z", 1)
	require.ErrorIs(t, err, vector.ErrUnknownAxis)
}

func TestVector2d_Construction(t *testing.T) {
	v, err := vector.Parse2(1, 2)
	require.NoError(t, err)
	require.Equal(t, vector.Of2(1, 2), v)

	_, err = vector.Parse2(1, 2, 3)
	require.ErrorIs(t, err, vector.ErrArity)

	v, err = vector.Match2(map[string]any{"x": 1, "y": 2.5})
	require.NoError(t, err)
	require.Equal(t, vector.Vec2(1, 2.5), v)

	// A 3D source is truncated to its first two coordinates.
	v, err = vector.Match2(vector.Vec3(7, 8, 9))
	require.NoError(t, err)
	require.Equal(t, vector.Vec2(7, 8), v)
}

func TestVector2d_Operators(t *testing.T) {
	v := vector.Vec2(3, 4)

	longer, err := v.Plus(5)
	require.NoError(t, err)
	require.True(t, longer.Approx(vector.Vec2(6, 8), eps))

	sum, err := v.Plus(vector.Vec2(1, 1))
	require.NoError(t, err)
	require.Equal(t, vector.Vec2(4, 5), sum)

	_, err = v.Plus(vector.Vec3(1, 1, 1))
	require.ErrorIs(t, err, vector.ErrTypeMismatch)

	diff, err := v.Minus(vector.Tuple2{3, 4})
	require.NoError(t, err)
	require.Equal(t, vector.Vec2(0, 0), diff)

	require.Equal(t, 11.0, v.Dot(vector.Vec2(1, 2)))
}
