// SPDX-License-Identifier: MIT

package point

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/lvgeom/vector"
)

// Point3d is an immutable 3D location.
type Point3d struct {
	v vector.Vector3d // position vector from the origin
}

var _ vector.CoordinateTuple = Point3d{}

// Pt3 builds a Point3d without validation.
func Pt3(x, y, z float64) Point3d {
	return Point3d{v: vector.Vec3(x, y, z)}
}

// New3 builds a Point3d, rejecting NaN and ±Inf (vector.ErrNotNumeric).
func New3(x, y, z float64) (Point3d, error) {
	v, err := vector.New3(x, y, z)
	if err != nil {
		return Point3d{}, err
	}
	return Point3d{v: v}, nil
}

// Parse3 builds a Point3d from three dynamically typed numbers; see vector.Parse3.
func Parse3(values ...any) (Point3d, error) {
	v, err := vector.Parse3(values...)
	if err != nil {
		return Point3d{}, err
	}
	return Point3d{v: v}, nil
}

// Match3 builds a Point3d from any coordinate source accepted by vector.Match3.
func Match3(src any) (Point3d, error) {
	v, err := vector.Match3(src)
	if err != nil {
		return Point3d{}, err
	}
	return Point3d{v: v}, nil
}

// FromVector3 interprets a position vector as a point.
func FromVector3(v vector.Vector3d) Point3d { return Point3d{v: v} }

// FromTuple3 converts a raw tuple into a point.
func FromTuple3(t vector.Tuple3) Point3d { return Point3d{v: vector.FromTuple3(t)} }

// Origin is (0, 0, 0).
func Origin() Point3d { return Point3d{} }

// Vector returns the position vector of p.
func (p Point3d) Vector() vector.Vector3d { return p.v }

// X returns the first coordinate.
func (p Point3d) X() float64 { return p.v.X() }

// Y returns the second coordinate.
func (p Point3d) Y() float64 { return p.v.Y() }

// Z returns the third coordinate.
func (p Point3d) Z() float64 { return p.v.Z() }

// Dim returns 3.
func (p Point3d) Dim() int { return 3 }

// Coords returns the coordinates as a fresh slice.
func (p Point3d) Coords() []float64 { return p.v.Coords() }

// Tuple returns the comparable raw tuple.
func (p Point3d) Tuple() vector.Tuple3 { return p.v.Tuple() }

// All yields the coordinates in order.
func (p Point3d) All() iter.Seq[float64] { return p.v.All() }

// At returns the coordinate at position i (negative from the end).
func (p Point3d) At(i int) (float64, error) { return p.v.At(i) }

// Component returns the coordinate named "x", "y" or "z".
func (p Point3d) Component(name string) (float64, error) { return p.v.Component(name) }

// WithComponent returns a copy with the named coordinate replaced.
func (p Point3d) WithComponent(name string, value float64) (Point3d, error) {
	v, err := p.v.WithComponent(name, value)
	if err != nil {
		return p, err
	}
	return Point3d{v: v}, nil
}

// Translate returns p moved by v.
func (p Point3d) Translate(v vector.Vector3d) Point3d {
	return Point3d{v: p.v.Add(v)}
}

// Sub returns the vector p - q.
func (p Point3d) Sub(q Point3d) vector.Vector3d {
	return p.v.Sub(q.v)
}

// VectorTo returns the free vector from p to q (q - p).
func (p Point3d) VectorTo(q Point3d) vector.Vector3d {
	return q.v.Sub(p.v)
}

// DistanceTo returns the Euclidean distance |q - p|.
func (p Point3d) DistanceTo(q Point3d) float64 {
	return p.VectorTo(q).Length()
}

// Lerp interpolates between p (t=0) and q (t=1).
func (p Point3d) Lerp(q Point3d, t float64) Point3d {
	return p.Translate(p.VectorTo(q).Scale(t))
}

// Equal reports structural equality with any CoordinateTuple.
func (p Point3d) Equal(c vector.CoordinateTuple) bool { return vector.Equal(p, c) }

// Approx reports whether every coordinate differs from q's by less than eps.
func (p Point3d) Approx(q Point3d, eps float64) bool { return p.v.Approx(q.v, eps) }

// String implements fmt.Stringer: "Point3d(1, 2, 3)".
func (p Point3d) String() string {
	return fmt.Sprintf("Point3d(%g, %g, %g)", p.v.X(), p.v.Y(), p.v.Z())
}

// Rotate returns p rotated by angle radians about the axis through the
// origin with direction axis; see vector.Vector3d.Rotate.
func (p Point3d) Rotate(axis vector.Vector3d, angle float64) (Point3d, error) {
	v, err := p.v.Rotate(axis, angle)
	if err != nil {
		return Point3d{}, err
	}
	return Point3d{v: v}, nil
}

// Angle returns the angle in radians at vertex p2 formed by p1, p2 and p3,
// in [0, π]. It is computed as atan2(|b×a|, b·a) with a = p1-p2 and
// b = p3-p2, which stays accurate near 0 and π.
// vector.ErrZeroLength is returned when p1 or p3 coincides with p2.
func Angle(p1, p2, p3 Point3d) (float64, error) {
	a, b := p1.Sub(p2), p3.Sub(p2)
	if a.IsZero() || b.IsZero() {
		return 0, fmt.Errorf("Angle: %w", vector.ErrZeroLength)
	}
	return math.Atan2(b.Cross(a).Length(), b.Dot(a)), nil
}
