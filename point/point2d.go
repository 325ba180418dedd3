// SPDX-License-Identifier: MIT

package point

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/vector"
)

// Point2d is an immutable 2D location.
type Point2d struct {
	v vector.Vector2d
}

var _ vector.CoordinateTuple = Point2d{}

// Pt2 builds a Point2d without validation.
func Pt2(x, y float64) Point2d { return Point2d{v: vector.Vec2(x, y)} }

// New2 builds a Point2d, rejecting NaN and ±Inf.
func New2(x, y float64) (Point2d, error) {
	v, err := vector.New2(x, y)
	if err != nil {
		return Point2d{}, err
	}
	return Point2d{v: v}, nil
}

// FromVector2 interprets a position vector as a point.
func FromVector2(v vector.Vector2d) Point2d { return Point2d{v: v} }

// Vector returns the position vector of p.
func (p Point2d) Vector() vector.Vector2d { return p.v }

// X returns the first coordinate.
func (p Point2d) X() float64 { return p.v.X() }

// Y returns the second coordinate.
func (p Point2d) Y() float64 { return p.v.Y() }

// Dim returns 2.
func (p Point2d) Dim() int { return 2 }

// Coords returns the coordinates as a fresh slice.
func (p Point2d) Coords() []float64 { return p.v.Coords() }

// Tuple returns the comparable raw tuple.
func (p Point2d) Tuple() vector.Tuple2 { return p.v.Tuple() }

// Translate returns p moved by v.
func (p Point2d) Translate(v vector.Vector2d) Point2d { return Point2d{v: p.v.Add(v)} }

// VectorTo returns q - p.
func (p Point2d) VectorTo(q Point2d) vector.Vector2d { return q.v.Sub(p.v) }

// DistanceTo returns |q - p|.
func (p Point2d) DistanceTo(q Point2d) float64 { return p.VectorTo(q).Length() }

// Equal reports structural equality with any CoordinateTuple.
func (p Point2d) Equal(c vector.CoordinateTuple) bool { return vector.Equal(p, c) }

// String implements fmt.Stringer: "Point2d(1, 2)".
func (p Point2d) String() string { return fmt.Sprintf("Point2d(%g, %g)", p.v.X(), p.v.Y()) }
