// SPDX-License-Identifier: MIT

package cadio

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvgeom/box"
	"github.com/katalvlaran/lvgeom/line"
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/plane"
	"github.com/katalvlaran/lvgeom/point"
	"github.com/katalvlaran/lvgeom/vector"
)

// Import converts a CAD-side value into its lvgeom counterpart:
//
//	v3.Vec, r3.Vec -> vector.Vector3d
//	v2.Vec         -> vector.Vector2d
//	Line           -> line.Line3d
//	Plane          -> plane.Plane3d
//	sdf.Box3       -> box.Box3d
//	sdf.Box2       -> box.Box2d
//	sdf.M44        -> *matrix.Matrix
//
// Anything else, pointers included, yields ErrUnsupported.
func Import(obj any) (any, error) {
	switch g := obj.(type) {
	case v3.Vec:
		return FromV3(g), nil
	case r3.Vec:
		return FromR3(g), nil
	case v2.Vec:
		return FromV2(g), nil
	case Line:
		return LineFromCAD(g), nil
	case Plane:
		return PlaneFromCAD(g), nil
	case sdf.Box3:
		return BoxFromBox3(g), nil
	case sdf.Box2:
		return BoxFromBox2(g), nil
	case sdf.M44:
		m, err := MatrixFromM44(g)
		if err != nil {
			return nil, cadioErrorf(opImport, err)
		}
		return m, nil
	}
	return nil, cadioErrorf(opImport, fmt.Errorf("%w: %T", ErrUnsupported, obj))
}

// Export converts an lvgeom value into its CAD-side counterpart; the inverse
// of Import. Points and vectors both map to the sdfx vector types, and a
// 4×4 *matrix.Matrix maps to sdf.M44.
func Export(obj any) (any, error) {
	switch g := obj.(type) {
	case vector.Vector3d:
		return ToV3(g), nil
	case point.Point3d:
		return PointToV3(g), nil
	case vector.Vector2d:
		return ToV2(g), nil
	case point.Point2d:
		return Point2ToV2(g), nil
	case line.Line3d:
		return LineToCAD(g), nil
	case plane.Plane3d:
		return PlaneToCAD(g), nil
	case box.Box3d:
		return BoxToBox3(g), nil
	case box.Box2d:
		return BoxToBox2(g), nil
	case *matrix.Matrix:
		m, err := M44FromMatrix(g)
		if err != nil {
			return nil, cadioErrorf(opExport, err)
		}
		return m, nil
	}
	return nil, cadioErrorf(opExport, fmt.Errorf("%w: %T", ErrUnsupported, obj))
}

// ImportAll applies Import to every element and stops at the first failure,
// reporting its position.
func ImportAll(objs []any) ([]any, error) {
	out := make([]any, len(objs))
	for i, o := range objs {
		v, err := Import(o)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// ExportAll applies Export to every element.
func ExportAll(objs []any) ([]any, error) {
	out := make([]any, len(objs))
	for i, o := range objs {
		v, err := Export(o)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
