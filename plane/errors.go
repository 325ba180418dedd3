// SPDX-License-Identifier: MIT

package plane

import (
	"errors"
	"fmt"
)

var (
	// ErrCollinear is returned by FromPoints when the three points do not span a plane.
	ErrCollinear = errors.New("plane: points are collinear")

	// ErrParallel is returned by IntersectLine for a line parallel to the plane.
	ErrParallel = errors.New("plane: line is parallel to plane")
)

const (
	opFromPoints    = "FromPoints"
	opIntersectLine = "IntersectLine"
	opDistanceTo    = "DistanceTo"
	opAngleTo       = "AngleTo"
)

func planeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
