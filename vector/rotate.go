// SPDX-License-Identifier: MIT

package vector

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Rotate returns v rotated by angle radians about axis, counter-clockwise
// when looking down axis toward the origin. axis need not be unit length.
//
// A zero axis yields ErrZeroLength; a NaN or infinite angle yields
// ErrNotNumeric.
func (v Vector3d) Rotate(axis Vector3d, angle float64) (Vector3d, error) {
	if !isFinite(angle) {
		return Vector3d{}, vectorErrorf(opRotate, ErrNotNumeric)
	}
	if axis.IsZero() {
		return Vector3d{}, vectorErrorf(opRotate, ErrZeroLength)
	}
	rot := r3.NewRotation(angle, r3.Vec{X: axis.x, Y: axis.y, Z: axis.z})
	p := rot.Rotate(r3.Vec{X: v.x, Y: v.y, Z: v.z})
	return Vector3d{x: p.X, y: p.Y, z: p.Z}, nil
}
