// SPDX-License-Identifier: MIT

package plane

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom"
	"github.com/katalvlaran/lvgeom/line"
	"github.com/katalvlaran/lvgeom/point"
	"github.com/katalvlaran/lvgeom/vector"
)

// Plane3d is an immutable infinite plane.
type Plane3d struct {
	p point.Point3d
	n vector.Vector3d
	d float64 // -(n·p)
}

// New returns the plane through p with the given normal.
func New(p point.Point3d, normal vector.Vector3d) Plane3d {
	return Plane3d{p: p, n: normal, d: -normal.Dot(p.Vector())}
}

// FromPoints returns the plane through p1, p2 and p3, anchored at p1, with
// normal (p3 - p2) × (p2 - p1).
func FromPoints(p1, p2, p3 point.Point3d) (Plane3d, error) {
	normal := p3.Sub(p2).Cross(p2.Sub(p1))
	if normal.IsZero() {
		return Plane3d{}, planeErrorf(opFromPoints, ErrCollinear)
	}
	return New(p1, normal), nil
}

// Point returns the anchor point.
func (pl Plane3d) Point() point.Point3d { return pl.p }

// Normal returns the normal vector as given (not normalised).
func (pl Plane3d) Normal() vector.Vector3d { return pl.n }

// D returns the constant term of n·x + d = 0.
func (pl Plane3d) D() float64 { return pl.d }

// AngleTo returns the angle in radians between the normals of pl and other.
func (pl Plane3d) AngleTo(other Plane3d) (float64, error) {
	return pl.AngleToVector(other.n)
}

// AngleToVector returns the angle in radians between pl's normal and v.
func (pl Plane3d) AngleToVector(v vector.Vector3d) (float64, error) {
	a, err := pl.n.AngleTo(v)
	if err != nil {
		return 0, planeErrorf(opAngleTo, err)
	}
	return a, nil
}

// IntersectPlane returns the line shared by pl and other.
//
// The direction is n1 × n2. When the sum of its absolute components rounds to
// zero the planes are parallel and ok is false. Otherwise the coordinate with
// the largest magnitude (first one on ties) is fixed at 0 and the other two
// are solved from both plane equations by Cramer's rule.
func (pl Plane3d) IntersectPlane(other Plane3d) (l line.Line3d, ok bool) {
	v := pl.n.Cross(other.n)
	ax, ay, az := math.Abs(v.X()), math.Abs(v.Y()), math.Abs(v.Z())
	if vector.IsRoughlyZero(ax + ay + az) {
		lvgeom.Logger().Debug("plane: parallel planes do not intersect",
			"a", pl.String(), "b", other.String())
		return line.Line3d{}, false
	}

	n1, n2 := pl.n, other.n
	d1, d2 := pl.d, other.d
	var x, y, z float64
	switch {
	case ax >= ay && ax >= az:
		y = (d2*n1.Z() - d1*n2.Z()) / v.X()
		z = (d1*n2.Y() - d2*n1.Y()) / v.X()
	case ay >= az:
		x = (d1*n2.Z() - d2*n1.Z()) / v.Y()
		z = (d2*n1.X() - d1*n2.X()) / v.Y()
	default:
		x = (d2*n1.Y() - d1*n2.Y()) / v.Z()
		y = (d1*n2.X() - d2*n1.X()) / v.Z()
	}
	return line.New(v, point.Pt3(x, y, z)), true
}

// IntersectLine returns the point where l crosses pl:
// l.PointAt(t) with t = -(n·p + d) / (n·v).
func (pl Plane3d) IntersectLine(l line.Line3d) (point.Point3d, error) {
	nv := pl.n.Dot(l.Vector())
	if vector.IsRoughlyZero(nv) {
		lvgeom.Logger().Debug("plane: line parallel to plane",
			"plane", pl.String(), "line", l.String())
		return point.Point3d{}, planeErrorf(opIntersectLine, ErrParallel)
	}
	t := -(pl.n.Dot(l.Point().Vector()) + pl.d) / nv
	return l.PointAt(t), nil
}

// DistanceTo returns the signed distance from q to pl, positive on the side
// the normal points to. A zero normal yields vector.ErrZeroLength.
func (pl Plane3d) DistanceTo(q point.Point3d) (float64, error) {
	if pl.n.IsZero() {
		return 0, planeErrorf(opDistanceTo, vector.ErrZeroLength)
	}
	return (pl.n.Dot(q.Vector()) + pl.d) / pl.n.Length(), nil
}

// Contains reports whether q lies on pl within the rounding tolerance.
func (pl Plane3d) Contains(q point.Point3d) bool {
	dist, err := pl.DistanceTo(q)
	return err == nil && vector.IsRoughlyZero(dist)
}

// String implements fmt.Stringer: "Plane3d(Point3d(0, 0, 0), Vector3d(0, 0, 1))".
func (pl Plane3d) String() string {
	return fmt.Sprintf("Plane3d(%v, %v)", pl.p, pl.n)
}
