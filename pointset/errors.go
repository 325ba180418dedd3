// SPDX-License-Identifier: MIT
// Package pointset: sentinel error set.

package pointset

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension is returned when a coordinate source is not three-dimensional.
	ErrDimension = errors.New("pointset: coordinate source is not 3D")

	// ErrNotFound is returned by IndexOf for a point that is not in the set.
	ErrNotFound = errors.New("pointset: point not found")

	// ErrOutOfRange is returned by At for a position outside [-Len, Len).
	ErrOutOfRange = errors.New("pointset: index out of range")
)

const (
	opNew        = "New"
	opFromSlices = "FromSlices"
	opSetPoints  = "SetPoints"
	opExtend     = "Extend"
	opAppend     = "Append"
	opAt         = "At"
	opIndexOf    = "IndexOf"
)

func pointsetErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
