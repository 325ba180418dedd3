package cadio_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvgeom/box"
	"github.com/katalvlaran/lvgeom/cadio"
	"github.com/katalvlaran/lvgeom/interval"
	"github.com/katalvlaran/lvgeom/line"
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/plane"
	"github.com/katalvlaran/lvgeom/point"
	"github.com/katalvlaran/lvgeom/pointset"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/require"
)

func TestVectorRoundTrip(t *testing.T) {
	v := vector.Vec3(1.5, -2, 3.25)
	require.Equal(t, v3.Vec{X: 1.5, Y: -2, Z: 3.25}, cadio.ToV3(v))
	require.Equal(t, v, cadio.FromV3(cadio.ToV3(v)))
	require.Equal(t, v, cadio.FromR3(cadio.ToR3(v)))
	require.Equal(t, r3.Vec{X: 1.5, Y: -2, Z: 3.25}, cadio.ToR3(v))

	p := point.Pt3(4, 5, 6)
	require.Equal(t, p, cadio.PointFromV3(cadio.PointToV3(p)))

	w := vector.Vec2(7, -8)
	require.Equal(t, v2.Vec{X: 7, Y: -8}, cadio.ToV2(w))
	require.Equal(t, w, cadio.FromV2(cadio.ToV2(w)))
	require.Equal(t, point.Pt2(7, -8), cadio.Point2FromV2(cadio.Point2ToV2(point.Pt2(7, -8))))
}

func TestLinePlaneBoxRoundTrip(t *testing.T) {
	l := line.New(vector.Vec3(0, 0, 1), point.Pt3(1, 2, 3))
	cl := cadio.LineToCAD(l)
	require.Equal(t, v3.Vec{X: 1, Y: 2, Z: 3}, cl.From)
	require.Equal(t, v3.Vec{Z: 1}, cl.Direction)
	require.Equal(t, l, cadio.LineFromCAD(cl))

	pl := plane.New(point.Pt3(0, 0, 2), vector.WorldZ)
	require.Equal(t, pl, cadio.PlaneFromCAD(cadio.PlaneToCAD(pl)))

	b := box.New3(10, 20, 30)
	b3 := cadio.BoxToBox3(b)
	require.Equal(t, sdf.Box3{Min: v3.Vec{}, Max: v3.Vec{X: 10, Y: 20, Z: 30}}, b3)
	require.Equal(t, b, cadio.BoxFromBox3(b3))

	b2 := box.Default2()
	require.Equal(t, b2, cadio.BoxFromBox2(cadio.BoxToBox2(b2)))
}

func TestImportExport(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"v3", v3.Vec{X: 1, Y: 2, Z: 3}, vector.Vec3(1, 2, 3)},
		{"r3", r3.Vec{X: 1, Y: 2, Z: 3}, vector.Vec3(1, 2, 3)},
		{"v2", v2.Vec{X: 1, Y: 2}, vector.Vec2(1, 2)},
		{"line", cadio.Line{From: v3.Vec{X: 1}, Direction: v3.Vec{Y: 1}}, line.New(vector.WorldY, point.Pt3(1, 0, 0))},
		{"plane", cadio.Plane{Normal: v3.Vec{Z: 1}}, plane.New(point.Origin(), vector.WorldZ)},
		{"box3", sdf.Box3{Max: v3.Vec{X: 1, Y: 1, Z: 1}}, box.New3(1, 1, 1)},
		{"box2", sdf.Box2{Max: v2.Vec{X: 2, Y: 1}}, box.New2(2, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cadio.Import(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			if tc.name == "r3" {
				return // exports as v3.Vec
			}
			back, err := cadio.Export(got)
			require.NoError(t, err)
			require.Equal(t, tc.in, back)
		})
	}

	back, err := cadio.Export(point.Pt3(1, 2, 3))
	require.NoError(t, err)
	require.Equal(t, v3.Vec{X: 1, Y: 2, Z: 3}, back)

	_, err = cadio.Import("not geometry")
	require.ErrorIs(t, err, cadio.ErrUnsupported)
	_, err = cadio.Export(42)
	require.ErrorIs(t, err, cadio.ErrUnsupported)

	all, err := cadio.ImportAll([]any{v3.Vec{X: 1}, v2.Vec{Y: 1}})
	require.NoError(t, err)
	require.Equal(t, []any{vector.WorldX, vector.PageY}, all)
	_, err = cadio.ExportAll([]any{vector.WorldX, struct{}{}})
	require.ErrorIs(t, err, cadio.ErrUnsupported)
	require.ErrorContains(t, err, "element 1")
}

func TestMatrixFromM44(t *testing.T) {
	m44 := sdf.Translate3d(v3.Vec{X: 1, Y: 2, Z: 3}).Mul(sdf.Scale3d(v3.Vec{X: 2, Y: 3, Z: 4}))
	m, err := cadio.MatrixFromM44(m44)
	require.NoError(t, err)

	want, err := matrix.New([][]float64{
		{2, 0, 0, 1},
		{0, 3, 0, 2},
		{0, 0, 4, 3},
		{0, 0, 0, 1},
	})
	require.NoError(t, err)
	require.True(t, m.AllClose(want), m.String())

	id, err := cadio.MatrixFromM44(sdf.Identity3d())
	require.NoError(t, err)
	require.True(t, id.AllClose(matrix.Identity(4)))

	imported, err := cadio.Import(m44)
	require.NoError(t, err)
	require.True(t, imported.(*matrix.Matrix).AllClose(want))

	exported, err := cadio.Export(imported)
	require.NoError(t, err)
	require.Equal(t, m44, exported)
}

func TestM44FromMatrix(t *testing.T) {
	m44 := sdf.Translate3d(v3.Vec{X: 4, Y: -1}).Mul(sdf.RotateZ(math.Pi / 6))
	m, err := cadio.MatrixFromM44(m44)
	require.NoError(t, err)

	back, err := cadio.M44FromMatrix(m)
	require.NoError(t, err)
	require.Equal(t, m44, back)

	_, err = cadio.M44FromMatrix(matrix.Identity(3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = cadio.M44FromMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = cadio.Export(matrix.Identity(2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestApplyMatrix_AgreesWithM44(t *testing.T) {
	m44 := sdf.Translate3d(v3.Vec{X: -1, Y: 0.5, Z: 2}).Mul(sdf.RotateZ(math.Pi / 3))
	m, err := cadio.MatrixFromM44(m44)
	require.NoError(t, err)

	for _, p := range []point.Point3d{point.Origin(), point.Pt3(1, 2, 3), point.Pt3(-4, 0.25, 9)} {
		got, err := cadio.ApplyMatrix(m, p)
		require.NoError(t, err)
		require.True(t, got.Approx(cadio.TransformPoint(m44, p), 1e-9), "%v -> %v", p, got)
	}

	_, err = cadio.ApplyMatrix(matrix.Identity(3), point.Origin())
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransformPoints(t *testing.T) {
	s, err := pointset.New(vector.Tuple3{0, 0, 0}, vector.Tuple3{1, 1, 1})
	require.NoError(t, err)

	moved, err := cadio.TransformPoints(sdf.Translate3d(v3.Vec{X: 10}), s)
	require.NoError(t, err)
	require.Equal(t, []point.Point3d{point.Pt3(10, 0, 0), point.Pt3(11, 1, 1)}, moved.Points())
	require.Equal(t, 2, s.Len())
}

func TestTransformPoints_KeepsUnique(t *testing.T) {
	s := pointset.NewWith(pointset.WithUnique())
	require.NoError(t, s.Extend(vector.Tuple3{0, 0, 0}, vector.Tuple3{1, 1, 1}))

	moved, err := cadio.TransformPoints(sdf.Translate3d(v3.Vec{X: 10}), s)
	require.NoError(t, err)
	require.NoError(t, moved.Append(vector.Tuple3{10, 0, 0}))
	require.Equal(t, 2, moved.Len())

	// Flattening onto the XY plane maps both points of a vertical pair onto one.
	col, err := pointset.FromSlices([][]float64{{1, 2, 0}, {1, 2, 5}}, pointset.WithUnique())
	require.NoError(t, err)
	flat, err := cadio.TransformPoints(sdf.Scale3d(v3.Vec{X: 1, Y: 1, Z: 0}), col)
	require.NoError(t, err)
	require.Equal(t, []point.Point3d{point.Pt3(1, 2, 0)}, flat.Points())
}

func TestSolid_BoundingBox(t *testing.T) {
	b := box.FromIntervals(interval.New(1, 3), interval.New(-2, 2), interval.New(0, 6))
	s, err := cadio.Solid(b)
	require.NoError(t, err)

	bb := s.BoundingBox()
	require.InDelta(t, 1.0, bb.Min.X, 1e-9)
	require.InDelta(t, -2.0, bb.Min.Y, 1e-9)
	require.InDelta(t, 0.0, bb.Min.Z, 1e-9)
	require.InDelta(t, 3.0, bb.Max.X, 1e-9)
	require.InDelta(t, 2.0, bb.Max.Y, 1e-9)
	require.InDelta(t, 6.0, bb.Max.Z, 1e-9)
}

func TestWriteDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.dxf")
	pts := []point.Point2d{point.Pt2(0, 0), point.Pt2(10, 5)}
	segs := []cadio.Segment{{pts[0], pts[1]}}

	require.NoError(t, cadio.WriteDXF(path, pts, segs, cadio.WithPointRadius(0.25)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.Contains(t, string(data), "LINE")
}

func TestWithPointRadius_Panics(t *testing.T) {
	require.Panics(t, func() { cadio.WithPointRadius(0) })
	require.Panics(t, func() { cadio.WithPointRadius(math.Inf(1)) })
}
