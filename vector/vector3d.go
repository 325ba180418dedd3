// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"iter"
	"math"
)

// Vector3d is an immutable 3D displacement.
// The zero value is the zero vector. Vector3d is comparable; == is structural
// equality and Tuple() yields the equivalent raw key.
type Vector3d struct {
	x, y, z float64
}

// Vec3 builds a Vector3d without validation. Use it for literals; use New3
// or Parse3 for untrusted input.
func Vec3(x, y, z float64) Vector3d {
	return Vector3d{x: x, y: y, z: z}
}

// Of3 builds a Vector3d from any integer or float components.
func Of3[T Scalar](x, y, z T) Vector3d {
	return Vector3d{x: float64(x), y: float64(y), z: float64(z)}
}

// New3 builds a Vector3d, rejecting NaN and ±Inf with ErrNotNumeric.
func New3(x, y, z float64) (Vector3d, error) {
	if !isFinite(x) || !isFinite(y) || !isFinite(z) {
		return Vector3d{}, vectorErrorf(opNew, ErrNotNumeric)
	}
	return Vector3d{x: x, y: y, z: z}, nil
}

// Parse3 builds a Vector3d from exactly three dynamically typed numbers.
//
// Errors:
//   - ErrArity if len(values) != 3.
//   - ErrNotNumeric if any value is not a Go integer or float, or is NaN/±Inf.
func Parse3(values ...any) (Vector3d, error) {
	c, err := parseComponents(values, 3)
	if err != nil {
		return Vector3d{}, vectorErrorf(opParse, err)
	}
	return Vector3d{x: c[0], y: c[1], z: c[2]}, nil
}

// Match3 builds a Vector3d from another coordinate source:
//   - a CoordinateTuple of dimension ≥ 3 (first three coordinates),
//   - a map[string]float64 or map[string]any holding "x", "y" and "z",
//   - any numeric slice or array with at least three items (extras ignored).
//
// It is the pure replacement of an in-place "match" mutator: the receiver of
// the old coordinates is simply rebound to the result.
func Match3(src any) (Vector3d, error) {
	c, err := matchComponents(src, 3)
	if err != nil {
		return Vector3d{}, vectorErrorf(opMatch, err)
	}
	return Vector3d{x: c[0], y: c[1], z: c[2]}, nil
}

// FromTuple3 converts a raw tuple into a vector.
func FromTuple3(t Tuple3) Vector3d {
	return Vector3d{x: t[0], y: t[1], z: t[2]}
}

// X returns the first coordinate.
func (v Vector3d) X() float64 { return v.x }

// Y returns the second coordinate.
func (v Vector3d) Y() float64 { return v.y }

// Z returns the third coordinate.
func (v Vector3d) Z() float64 { return v.z }

// Dim returns 3.
func (v Vector3d) Dim() int { return 3 }

// Coords returns the coordinates as a fresh slice.
func (v Vector3d) Coords() []float64 { return []float64{v.x, v.y, v.z} }

// Tuple returns the comparable raw tuple with the same coordinates.
func (v Vector3d) Tuple() Tuple3 { return Tuple3{v.x, v.y, v.z} }

// XY drops the z coordinate.
func (v Vector3d) XY() Vector2d { return Vector2d{x: v.x, y: v.y} }

// All yields the coordinates in order. The sequence is restartable.
func (v Vector3d) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		_ = yield(v.x) && yield(v.y) && yield(v.z)
	}
}

// AsMap returns the coordinates keyed by axis name.
func (v Vector3d) AsMap() map[string]float64 {
	return map[string]float64{"x": v.x, "y": v.y, "z": v.z}
}

// At returns the coordinate at position i; negative i counts from the end,
// so At(-1) is z.
func (v Vector3d) At(i int) (float64, error) {
	idx, err := resolveIndex(i, 3)
	if err != nil {
		return 0, vectorErrorf(opAt, err)
	}
	return v.Coords()[idx], nil
}

// Component returns the coordinate named "x", "y" or "z".
func (v Vector3d) Component(name string) (float64, error) {
	a, err := ParseAxis(name)
	if err != nil {
		return 0, vectorErrorf(opComponent, ErrUnknownAxis)
	}
	return v.Coords()[a], nil
}

// Slice returns coordinates [lo, hi) with sequence-slice semantics
// (negative bounds from the end, clipping, never an error).
// Slice(0, 2) is the xy pair.
func (v Vector3d) Slice(lo, hi int) []float64 {
	return sliceOf(v.Coords(), lo, hi)
}

// WithAt returns a copy with the coordinate at position i replaced.
func (v Vector3d) WithAt(i int, value float64) (Vector3d, error) {
	idx, err := resolveIndex(i, 3)
	if err != nil {
		return v, vectorErrorf(opWithAt, err)
	}
	if !isFinite(value) {
		return v, vectorErrorf(opWithAt, ErrNotNumeric)
	}
	t := v.Tuple()
	t[idx] = value
	return FromTuple3(t), nil
}

// WithComponent returns a copy with the named coordinate replaced.
func (v Vector3d) WithComponent(name string, value float64) (Vector3d, error) {
	a, err := ParseAxis(name)
	if err != nil {
		return v, vectorErrorf(opWithComp, ErrUnknownAxis)
	}
	if !isFinite(value) {
		return v, vectorErrorf(opWithComp, ErrNotNumeric)
	}
	t := v.Tuple()
	t[a] = value
	return FromTuple3(t), nil
}

// ToX returns a copy with a new x value.
func (v Vector3d) ToX(x float64) Vector3d { return Vector3d{x: x, y: v.y, z: v.z} }

// ToY returns a copy with a new y value.
func (v Vector3d) ToY(y float64) Vector3d { return Vector3d{x: v.x, y: y, z: v.z} }

// ToZ returns a copy with a new z value.
func (v Vector3d) ToZ(z float64) Vector3d { return Vector3d{x: v.x, y: v.y, z: z} }

// Length returns the Euclidean norm.
func (v Vector3d) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared Euclidean norm.
func (v Vector3d) LengthSquared() float64 {
	return v.x*v.x + v.y*v.y + v.z*v.z
}

// IsZero reports whether the squared length is roughly zero.
func (v Vector3d) IsZero() bool {
	return IsRoughlyZero(v.LengthSquared())
}

// Normalized returns the unit vector with the same direction.
// It fails with ErrZeroLength when the squared length rounds to zero at
// RoundingDigits decimals, e.g. for (0,0,0) and (1e-10,0,0).
func (v Vector3d) Normalized() (Vector3d, error) {
	if v.IsZero() {
		return Vector3d{}, vectorErrorf(opNormalized, ErrZeroLength)
	}
	return v.Scale(1 / v.Length()), nil
}

// ToLength returns a vector parallel to v with amplitude n.
func (v Vector3d) ToLength(n float64) (Vector3d, error) {
	u, err := v.Normalized()
	if err != nil {
		return Vector3d{}, vectorErrorf(opToLength, err)
	}
	return u.Scale(n), nil
}

// ExtendLength grows the amplitude of v by n along its own direction:
// Normalized()*n + v. This is the "number + vector" operation, NOT an
// elementwise scalar add. ExtendLength(0) equals v numerically.
func (v Vector3d) ExtendLength(n float64) (Vector3d, error) {
	u, err := v.Normalized()
	if err != nil {
		return Vector3d{}, vectorErrorf(opExtendLength, err)
	}
	return u.Scale(n).Add(v), nil
}

// Add returns the elementwise sum.
func (v Vector3d) Add(w Vector3d) Vector3d {
	return Vector3d{x: v.x + w.x, y: v.y + w.y, z: v.z + w.z}
}

// Sub returns v + w*-1.
func (v Vector3d) Sub(w Vector3d) Vector3d {
	return v.Add(w.Scale(-1))
}

// Scale returns the vector multiplied elementwise by s.
func (v Vector3d) Scale(s float64) Vector3d {
	return Vector3d{x: v.x * s, y: v.y * s, z: v.z * s}
}

// Neg returns v * -1.
func (v Vector3d) Neg() Vector3d {
	return v.Scale(-1)
}

// Dot returns the sum of elementwise products.
func (v Vector3d) Dot(w Vector3d) float64 {
	return v.x*w.x + v.y*w.y + v.z*w.z
}

// Cross returns the cross product v × w (anti-commutative).
func (v Vector3d) Cross(w Vector3d) Vector3d {
	return Vector3d{
		x: v.y*w.z - v.z*w.y,
		y: v.z*w.x - v.x*w.z,
		z: v.x*w.y - v.y*w.x,
	}
}

// Plus is the polymorphic "+" operator:
//   - a Go number n → ExtendLength(n),
//   - a 3D CoordinateTuple (vector, point, Tuple3) → elementwise Add,
//   - anything else → ErrTypeMismatch.
func (v Vector3d) Plus(other any) (Vector3d, error) {
	if n, ok := toFloat(other); ok {
		r, err := v.ExtendLength(n)
		if err != nil {
			return Vector3d{}, vectorErrorf(opPlus, err)
		}
		return r, nil
	}
	if c, ok := other.(CoordinateTuple); ok && c.Dim() == 3 {
		cs := c.Coords()
		return v.Add(Vector3d{x: cs[0], y: cs[1], z: cs[2]}), nil
	}
	return Vector3d{}, vectorErrorf(opPlus, ErrTypeMismatch)
}

// Minus is v.Plus(other * -1) for the same operand types as Plus.
func (v Vector3d) Minus(other any) (Vector3d, error) {
	if n, ok := toFloat(other); ok {
		r, err := v.ExtendLength(-n)
		if err != nil {
			return Vector3d{}, vectorErrorf(opMinus, err)
		}
		return r, nil
	}
	if c, ok := other.(CoordinateTuple); ok && c.Dim() == 3 {
		cs := c.Coords()
		return v.Sub(Vector3d{x: cs[0], y: cs[1], z: cs[2]}), nil
	}
	return Vector3d{}, vectorErrorf(opMinus, ErrTypeMismatch)
}

// AngleTo returns the angle in radians between v and w:
// acos(v·w / (|v||w|)). The cosine is clamped into [-1, 1] so rounding never
// produces NaN for (anti)parallel vectors.
func (v Vector3d) AngleTo(w Vector3d) (float64, error) {
	if v.IsZero() || w.IsZero() {
		return 0, vectorErrorf(opAngleTo, ErrZeroLength)
	}
	return clampedAcos(v.Dot(w) / (v.Length() * w.Length())), nil
}

// Equal reports structural equality with any CoordinateTuple.
func (v Vector3d) Equal(c CoordinateTuple) bool {
	return Equal(v, c)
}

// Approx reports whether every coordinate differs from w's by less than eps.
func (v Vector3d) Approx(w Vector3d, eps float64) bool {
	return math.Abs(v.x-w.x) < eps && math.Abs(v.y-w.y) < eps && math.Abs(v.z-w.z) < eps
}

// String implements fmt.Stringer: "Vector3d(1, 2, 3)".
func (v Vector3d) String() string {
	return fmt.Sprintf("Vector3d(%g, %g, %g)", v.x, v.y, v.z)
}

func clampedAcos(c float64) float64 {
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}
