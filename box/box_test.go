package box_test

import (
	"testing"

	"github.com/katalvlaran/lvgeom/box"
	"github.com/katalvlaran/lvgeom/interval"
	"github.com/katalvlaran/lvgeom/point"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	b2 := box.Default2()
	require.Equal(t, interval.Width(200), b2.X())
	require.Equal(t, interval.Width(100), b2.Y())
	require.Equal(t, point.Pt2(100, 50), b2.Center())

	b3 := box.Default3()
	require.Equal(t, point.Pt3(100, 100, 100), b3.Center())
	require.Equal(t, "Box3d(Interval[0, 200), Interval[0, 200), Interval[0, 200))", b3.String())
}

func TestBox3d_Contains(t *testing.T) {
	b := box.New3(10, 20, 30)
	require.True(t, b.Contains(point.Origin()))
	require.True(t, b.Contains(point.Pt3(9.9, 19.9, 29.9)))
	require.False(t, b.Contains(b.Max()))
	require.False(t, b.Contains(point.Pt3(5, -1, 5)))
}

func TestBox3d_FromPointsAndInclude(t *testing.T) {
	b, err := box.FromPoints(point.Pt3(1, 5, -2), point.Pt3(-3, 2, 4), point.Pt3(0, 0, 0))
	require.NoError(t, err)
	require.Equal(t, point.Pt3(-3, 0, -2), b.Min())
	require.Equal(t, point.Pt3(1, 5, 4), b.Max())

	wide := b.Include(point.Pt3(10, 1, 1))
	require.Equal(t, interval.New(-3, 10), wide.X())
	require.Equal(t, b.Y(), wide.Y())
	require.Equal(t, b.Z(), wide.Z())

	_, err = box.FromPoints()
	require.ErrorIs(t, err, box.ErrEmpty)
}

func TestBox2d(t *testing.T) {
	b := box.FromIntervals2(interval.New(-1, 1), interval.New(-2, 2))
	require.Equal(t, point.Pt2(0, 0), b.Center())
	require.True(t, b.Contains(point.Pt2(-1, -2)))
	require.False(t, b.Contains(point.Pt2(1, 0)))
	require.Equal(t, interval.New(-1, 5), b.Include(point.Pt2(5, 0)).X())
}
