// SPDX-License-Identifier: MIT

package vector

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of numeric types accepted by the generic constructors.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// CoordinateTuple is the capability shared by vectors, points and raw tuples:
// an ordered, fixed-length sequence of coordinates.
//
// Coords must return a fresh slice; callers may modify it.
type CoordinateTuple interface {
	// Dim returns the number of coordinates (2 or 3).
	Dim() int
	// Coords returns the coordinates in order.
	Coords() []float64
}

// Tuple2 is a plain 2D coordinate tuple. It is comparable and is the map key
// used for 2D values.
type Tuple2 [2]float64

// Tuple3 is a plain 3D coordinate tuple. It is comparable and is the map key
// used for 3D values: Vec3(1,2,3).Tuple() == Tuple3{1,2,3}.
type Tuple3 [3]float64

// Compile-time conformance.
var (
	_ CoordinateTuple = Tuple2{}
	_ CoordinateTuple = Tuple3{}
	_ CoordinateTuple = Vector2d{}
	_ CoordinateTuple = Vector3d{}
)

// Dim returns 2.
func (t Tuple2) Dim() int { return 2 }

// Coords returns the tuple as a slice.
func (t Tuple2) Coords() []float64 { return []float64{t[0], t[1]} }

// Dim returns 3.
func (t Tuple3) Dim() int { return 3 }

// Coords returns the tuple as a slice.
func (t Tuple3) Coords() []float64 { return []float64{t[0], t[1], t[2]} }

// Equal reports structural equality: same dimension and identical
// coordinates, regardless of the concrete types of a and b.
func Equal(a, b CoordinateTuple) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Dim() != b.Dim() {
		return false
	}
	ac, bc := a.Coords(), b.Coords()
	for i := range ac {
		if ac[i] != bc[i] {
			return false
		}
	}
	return true
}

// Axis names a coordinate axis.
type Axis int

// Axes in coordinate order.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var axisNames = [...]string{"x", "y", "z"}

// String returns "x", "y" or "z".
func (a Axis) String() string {
	if a < AxisX || a > AxisZ {
		return "Axis(" + strconv.Itoa(int(a)) + ")"
	}
	return axisNames[a]
}

// ParseAxis maps the lower-case names "x", "y" and "z" to an Axis.
func ParseAxis(name string) (Axis, error) {
	switch name {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, vectorErrorf(opParseAxis, ErrUnknownAxis)
}
