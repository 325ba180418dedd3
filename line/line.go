// SPDX-License-Identifier: MIT

package line

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgeom/point"
	"github.com/katalvlaran/lvgeom/vector"
)

// ErrDegenerate is returned when the direction of a line rounds to zero.
var ErrDegenerate = errors.New("line: zero direction vector")

// Line3d is an immutable infinite line.
type Line3d struct {
	v vector.Vector3d
	p point.Point3d
}

// New returns the line through p parallel to v.
func New(v vector.Vector3d, p point.Point3d) Line3d {
	return Line3d{v: v, p: p}
}

// Through returns the line through p1 and p2, directed from p1 to p2.
func Through(p1, p2 point.Point3d) Line3d {
	return Line3d{v: p1.VectorTo(p2), p: p1}
}

// FromVector returns the line through the origin parallel to v.
func FromVector(v vector.Vector3d) Line3d {
	return Line3d{v: v, p: point.Origin()}
}

// Vector returns the direction.
func (l Line3d) Vector() vector.Vector3d { return l.v }

// Point returns the anchor point.
func (l Line3d) Point() point.Point3d { return l.p }

// IsDegenerate reports whether the direction rounds to zero.
func (l Line3d) IsDegenerate() bool { return l.v.IsZero() }

// PointAt returns Point() + t*Vector().
func (l Line3d) PointAt(t float64) point.Point3d {
	return l.p.Translate(l.v.Scale(t))
}

// Parameter returns t such that PointAt(t) is the projection of q onto l.
func (l Line3d) Parameter(q point.Point3d) (float64, error) {
	if l.IsDegenerate() {
		return 0, fmt.Errorf("Parameter: %w", ErrDegenerate)
	}
	return l.p.VectorTo(q).Dot(l.v) / l.v.LengthSquared(), nil
}

// ClosestPoint returns the point of l nearest to q.
func (l Line3d) ClosestPoint(q point.Point3d) (point.Point3d, error) {
	t, err := l.Parameter(q)
	if err != nil {
		return point.Point3d{}, fmt.Errorf("ClosestPoint: %w", err)
	}
	return l.PointAt(t), nil
}

// DistanceTo returns the perpendicular distance from q to l.
func (l Line3d) DistanceTo(q point.Point3d) (float64, error) {
	c, err := l.ClosestPoint(q)
	if err != nil {
		return 0, fmt.Errorf("DistanceTo: %w", err)
	}
	return c.DistanceTo(q), nil
}

// String implements fmt.Stringer: "Line3d(Vector3d(1, 0, 0), Point3d(0, 0, 0))".
func (l Line3d) String() string {
	return fmt.Sprintf("Line3d(%v, %v)", l.v, l.p)
}
