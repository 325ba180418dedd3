// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"iter"
	"math"
)

// Vector2d is an immutable 2D displacement. It has no cross product.
type Vector2d struct {
	x, y float64
}

// Vec2 builds a Vector2d without validation.
func Vec2(x, y float64) Vector2d {
	return Vector2d{x: x, y: y}
}

// Of2 builds a Vector2d from any integer or float components.
func Of2[T Scalar](x, y T) Vector2d {
	return Vector2d{x: float64(x), y: float64(y)}
}

// New2 builds a Vector2d, rejecting NaN and ±Inf with ErrNotNumeric.
func New2(x, y float64) (Vector2d, error) {
	if !isFinite(x) || !isFinite(y) {
		return Vector2d{}, vectorErrorf(opNew, ErrNotNumeric)
	}
	return Vector2d{x: x, y: y}, nil
}

// Parse2 builds a Vector2d from exactly two dynamically typed numbers.
func Parse2(values ...any) (Vector2d, error) {
	c, err := parseComponents(values, 2)
	if err != nil {
		return Vector2d{}, vectorErrorf(opParse, err)
	}
	return Vector2d{x: c[0], y: c[1]}, nil
}

// Match2 builds a Vector2d from a CoordinateTuple, an axis-keyed map or a
// numeric sequence; see Match3.
func Match2(src any) (Vector2d, error) {
	c, err := matchComponents(src, 2)
	if err != nil {
		return Vector2d{}, vectorErrorf(opMatch, err)
	}
	return Vector2d{x: c[0], y: c[1]}, nil
}

// FromTuple2 converts a raw tuple into a vector.
func FromTuple2(t Tuple2) Vector2d {
	return Vector2d{x: t[0], y: t[1]}
}

// X returns the first coordinate.
func (v Vector2d) X() float64 { return v.x }

// Y returns the second coordinate.
func (v Vector2d) Y() float64 { return v.y }

// Dim returns 2.
func (v Vector2d) Dim() int { return 2 }

// Coords returns the coordinates as a fresh slice.
func (v Vector2d) Coords() []float64 { return []float64{v.x, v.y} }

// Tuple returns the comparable raw tuple.
func (v Vector2d) Tuple() Tuple2 { return Tuple2{v.x, v.y} }

// To3D lifts the vector into 3D with the given z.
func (v Vector2d) To3D(z float64) Vector3d { return Vector3d{x: v.x, y: v.y, z: z} }

// All yields the coordinates in order.
func (v Vector2d) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		_ = yield(v.x) && yield(v.y)
	}
}

// AsMap returns the coordinates keyed by axis name.
func (v Vector2d) AsMap() map[string]float64 {
	return map[string]float64{"x": v.x, "y": v.y}
}

// At returns the coordinate at position i (negative from the end).
func (v Vector2d) At(i int) (float64, error) {
	idx, err := resolveIndex(i, 2)
	if err != nil {
		return 0, vectorErrorf(opAt, err)
	}
	return v.Coords()[idx], nil
}

// Component returns the coordinate named "x" or "y".
func (v Vector2d) Component(name string) (float64, error) {
	a, err := ParseAxis(name)
	if err != nil || a == AxisZ {
		return 0, vectorErrorf(opComponent, ErrUnknownAxis)
	}
	return v.Coords()[a], nil
}

// Slice returns coordinates [lo, hi) with sequence-slice semantics.
func (v Vector2d) Slice(lo, hi int) []float64 {
	return sliceOf(v.Coords(), lo, hi)
}

// WithAt returns a copy with the coordinate at position i replaced.
func (v Vector2d) WithAt(i int, value float64) (Vector2d, error) {
	idx, err := resolveIndex(i, 2)
	if err != nil {
		return v, vectorErrorf(opWithAt, err)
	}
	if !isFinite(value) {
		return v, vectorErrorf(opWithAt, ErrNotNumeric)
	}
	t := v.Tuple()
	t[idx] = value
	return FromTuple2(t), nil
}

// WithComponent returns a copy with the named coordinate replaced.
func (v Vector2d) WithComponent(name string, value float64) (Vector2d, error) {
	a, err := ParseAxis(name)
	if err != nil || a == AxisZ {
		return v, vectorErrorf(opWithComp, ErrUnknownAxis)
	}
	if !isFinite(value) {
		return v, vectorErrorf(opWithComp, ErrNotNumeric)
	}
	t := v.Tuple()
	t[a] = value
	return FromTuple2(t), nil
}

// ToX returns a copy with a new x value.
func (v Vector2d) ToX(x float64) Vector2d { return Vector2d{x: x, y: v.y} }

// ToY returns a copy with a new y value.
func (v Vector2d) ToY(y float64) Vector2d { return Vector2d{x: v.x, y: y} }

// Length returns the Euclidean norm.
func (v Vector2d) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// LengthSquared returns the squared Euclidean norm.
func (v Vector2d) LengthSquared() float64 { return v.x*v.x + v.y*v.y }

// IsZero reports whether the squared length is roughly zero.
func (v Vector2d) IsZero() bool { return IsRoughlyZero(v.LengthSquared()) }

// Normalized returns the unit vector with the same direction, or
// ErrZeroLength; see Vector3d.Normalized.
func (v Vector2d) Normalized() (Vector2d, error) {
	if v.IsZero() {
		return Vector2d{}, vectorErrorf(opNormalized, ErrZeroLength)
	}
	return v.Scale(1 / v.Length()), nil
}

// ToLength returns a vector parallel to v with amplitude n.
func (v Vector2d) ToLength(n float64) (Vector2d, error) {
	u, err := v.Normalized()
	if err != nil {
		return Vector2d{}, vectorErrorf(opToLength, err)
	}
	return u.Scale(n), nil
}

// ExtendLength returns Normalized()*n + v.
func (v Vector2d) ExtendLength(n float64) (Vector2d, error) {
	u, err := v.Normalized()
	if err != nil {
		return Vector2d{}, vectorErrorf(opExtendLength, err)
	}
	return u.Scale(n).Add(v), nil
}

// Add returns the elementwise sum.
func (v Vector2d) Add(w Vector2d) Vector2d { return Vector2d{x: v.x + w.x, y: v.y + w.y} }

// Sub returns v + w*-1.
func (v Vector2d) Sub(w Vector2d) Vector2d { return v.Add(w.Scale(-1)) }

// Scale returns the vector multiplied elementwise by s.
func (v Vector2d) Scale(s float64) Vector2d { return Vector2d{x: v.x * s, y: v.y * s} }

// Neg returns v * -1.
func (v Vector2d) Neg() Vector2d { return v.Scale(-1) }

// Dot returns the sum of elementwise products.
func (v Vector2d) Dot(w Vector2d) float64 { return v.x*w.x + v.y*w.y }

// Plus is the polymorphic "+" operator; see Vector3d.Plus.
func (v Vector2d) Plus(other any) (Vector2d, error) {
	if n, ok := toFloat(other); ok {
		r, err := v.ExtendLength(n)
		if err != nil {
			return Vector2d{}, vectorErrorf(opPlus, err)
		}
		return r, nil
	}
	if c, ok := other.(CoordinateTuple); ok && c.Dim() == 2 {
		cs := c.Coords()
		return v.Add(Vector2d{x: cs[0], y: cs[1]}), nil
	}
	return Vector2d{}, vectorErrorf(opPlus, ErrTypeMismatch)
}

// Minus is v.Plus(other * -1).
func (v Vector2d) Minus(other any) (Vector2d, error) {
	if n, ok := toFloat(other); ok {
		r, err := v.ExtendLength(-n)
		if err != nil {
			return Vector2d{}, vectorErrorf(opMinus, err)
		}
		return r, nil
	}
	if c, ok := other.(CoordinateTuple); ok && c.Dim() == 2 {
		cs := c.Coords()
		return v.Sub(Vector2d{x: cs[0], y: cs[1]}), nil
	}
	return Vector2d{}, vectorErrorf(opMinus, ErrTypeMismatch)
}

// AngleTo returns the unsigned angle in radians between v and w.
func (v Vector2d) AngleTo(w Vector2d) (float64, error) {
	if v.IsZero() || w.IsZero() {
		return 0, vectorErrorf(opAngleTo, ErrZeroLength)
	}
	return clampedAcos(v.Dot(w) / (v.Length() * w.Length())), nil
}

// Equal reports structural equality with any CoordinateTuple.
func (v Vector2d) Equal(c CoordinateTuple) bool { return Equal(v, c) }

// Approx reports whether every coordinate differs from w's by less than eps.
func (v Vector2d) Approx(w Vector2d, eps float64) bool {
	return math.Abs(v.x-w.x) < eps && math.Abs(v.y-w.y) < eps
}

// String implements fmt.Stringer: "Vector2d(1, 2)".
func (v Vector2d) String() string {
	return fmt.Sprintf("Vector2d(%g, %g)", v.x, v.y)
}
