// SPDX-License-Identifier: MIT

package cadio

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/katalvlaran/lvgeom/box"
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/point"
	"github.com/katalvlaran/lvgeom/pointset"
	"github.com/katalvlaran/lvgeom/vector"
)

// MatrixFromM44 returns m as a 4×4 Matrix. Both are row-major, so the
// cells are copied in order.
func MatrixFromM44(m sdf.M44) (*matrix.Matrix, error) {
	x := m.Values()
	return matrix.New([][]float64{
		{x[0], x[1], x[2], x[3]},
		{x[4], x[5], x[6], x[7]},
		{x[8], x[9], x[10], x[11]},
		{x[12], x[13], x[14], x[15]},
	})
}

// M44FromMatrix is the inverse of MatrixFromM44. m must be 4×4
// (matrix.ErrDimensionMismatch otherwise).
func M44FromMatrix(m *matrix.Matrix) (sdf.M44, error) {
	if m == nil {
		return sdf.M44{}, cadioErrorf(opM44, matrix.ErrDimensionMismatch)
	}
	if r, c := m.Shape(); r != 4 || c != 4 {
		return sdf.M44{}, cadioErrorf(opM44, fmt.Errorf("%w: %dx%d, want 4x4", matrix.ErrDimensionMismatch, r, c))
	}
	var x [16]float64
	i := 0
	for v := range m.Cells() {
		x[i] = v
		i++
	}
	return sdf.NewM44(x), nil
}

// ApplyMatrix transforms p by a 4×4 homogeneous matrix such as the one
// MatrixFromM44 returns. The result is divided by the homogeneous coordinate.
func ApplyMatrix(m *matrix.Matrix, p point.Point3d) (point.Point3d, error) {
	col, err := matrix.New([][]float64{{p.X()}, {p.Y()}, {p.Z()}, {1}})
	if err != nil {
		return point.Point3d{}, cadioErrorf(opApply, err)
	}
	r, err := m.Mul(col)
	if err != nil {
		return point.Point3d{}, cadioErrorf(opApply, err)
	}
	c, err := r.Col(0)
	if err != nil || len(c) != 4 {
		return point.Point3d{}, cadioErrorf(opApply, matrix.ErrDimensionMismatch)
	}
	if vector.IsRoughlyZero(c[3]) {
		return point.Point3d{}, cadioErrorf(opApply, vector.ErrZeroLength)
	}
	return point.Pt3(c[0]/c[3], c[1]/c[3], c[2]/c[3]), nil
}

// TransformPoint applies m to a single location.
func TransformPoint(m sdf.M44, p point.Point3d) point.Point3d {
	return PointFromV3(m.MulPosition(PointToV3(p)))
}

// TransformPoints returns a new set holding every point of s moved by m,
// in the same order. The result is configured like s, so a unique set stays
// unique when m maps two points onto one.
func TransformPoints(m sdf.M44, s *pointset.PointSet) (*pointset.PointSet, error) {
	out := s.Empty()
	for _, p := range s.All() {
		if err := out.Append(TransformPoint(m, p)); err != nil {
			return nil, cadioErrorf(opTransform, err)
		}
	}
	return out, nil
}

// Solid returns an sdfx solid filling b. sdf.Box3D is centred on the origin,
// so the solid is translated to b's centre.
func Solid(b box.Box3d) (sdf.SDF3, error) {
	size := v3.Vec{X: b.X().Length(), Y: b.Y().Length(), Z: b.Z().Length()}
	s, err := sdf.Box3D(size, 0)
	if err != nil {
		return nil, cadioErrorf(opSolid, err)
	}
	return sdf.Transform3D(s, sdf.Translate3d(PointToV3(b.Center()))), nil
}
