// SPDX-License-Identifier: MIT

package box

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/interval"
	"github.com/katalvlaran/lvgeom/point"
)

// Default extents used by Default2 and Default3.
const (
	DefaultWidth  = 200.0
	DefaultLength = 200.0
	DefaultHeight = 200.0

	// DefaultHeight2 is the height of the default 2D box.
	DefaultHeight2 = 100.0
)

// Box2d is the product of two half-open intervals.
type Box2d struct {
	x, y interval.Interval
}

// Box3d is the product of three half-open intervals.
type Box3d struct {
	x, y, z interval.Interval
}

// New2 returns [0,w) x [0,h).
func New2(w, h float64) Box2d {
	return Box2d{x: interval.Width(w), y: interval.Width(h)}
}

// Default2 returns New2(DefaultWidth, DefaultHeight2).
func Default2() Box2d { return New2(DefaultWidth, DefaultHeight2) }

// FromIntervals2 combines two axis intervals.
func FromIntervals2(x, y interval.Interval) Box2d { return Box2d{x: x, y: y} }

// X returns the horizontal extent.
func (b Box2d) X() interval.Interval { return b.x }

// Y returns the vertical extent.
func (b Box2d) Y() interval.Interval { return b.y }

// Center returns the midpoint of the box.
func (b Box2d) Center() point.Point2d {
	return point.Pt2(b.x.At(0.5), b.y.At(0.5))
}

// Contains reports whether p lies in the box (max edges excluded).
func (b Box2d) Contains(p point.Point2d) bool {
	return b.x.Contains(p.X()) && b.y.Contains(p.Y())
}

// Include returns the box widened on each axis to reach p.
func (b Box2d) Include(p point.Point2d) Box2d {
	return Box2d{x: b.x.Include(p.X()), y: b.y.Include(p.Y())}
}

// String implements fmt.Stringer.
func (b Box2d) String() string { return fmt.Sprintf("Box2d(%v, %v)", b.x, b.y) }

// New3 returns [0,w) x [0,l) x [0,h).
func New3(w, l, h float64) Box3d {
	return Box3d{x: interval.Width(w), y: interval.Width(l), z: interval.Width(h)}
}

// Default3 returns New3(DefaultWidth, DefaultLength, DefaultHeight).
func Default3() Box3d { return New3(DefaultWidth, DefaultLength, DefaultHeight) }

// FromIntervals combines three axis intervals.
func FromIntervals(x, y, z interval.Interval) Box3d { return Box3d{x: x, y: y, z: z} }

// FromPoints returns the bounding box of pts. The maximum corner lies on the
// excluded edge, so Contains reports false for points on it.
func FromPoints(pts ...point.Point3d) (Box3d, error) {
	if len(pts) == 0 {
		return Box3d{}, fmt.Errorf("FromPoints: %w", ErrEmpty)
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	zs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i], zs[i] = p.X(), p.Y(), p.Z()
	}
	x, _ := interval.Bounds(xs...)
	y, _ := interval.Bounds(ys...)
	z, _ := interval.Bounds(zs...)
	return Box3d{x: x, y: y, z: z}, nil
}

// X returns the extent along the x axis.
func (b Box3d) X() interval.Interval { return b.x }

// Y returns the extent along the y axis.
func (b Box3d) Y() interval.Interval { return b.y }

// Z returns the extent along the z axis.
func (b Box3d) Z() interval.Interval { return b.z }

// Min returns the inclusive corner (x.Start, y.Start, z.Start).
func (b Box3d) Min() point.Point3d { return point.Pt3(b.x.Start(), b.y.Start(), b.z.Start()) }

// Max returns the exclusive corner (x.End, y.End, z.End).
func (b Box3d) Max() point.Point3d { return point.Pt3(b.x.End(), b.y.End(), b.z.End()) }

// Center returns the midpoint of the box.
func (b Box3d) Center() point.Point3d {
	return point.Pt3(b.x.At(0.5), b.y.At(0.5), b.z.At(0.5))
}

// Contains reports whether p lies in the box (max faces excluded).
func (b Box3d) Contains(p point.Point3d) bool {
	return b.x.Contains(p.X()) && b.y.Contains(p.Y()) && b.z.Contains(p.Z())
}

// Include returns the box widened on each axis to reach p.
func (b Box3d) Include(p point.Point3d) Box3d {
	return Box3d{x: b.x.Include(p.X()), y: b.y.Include(p.Y()), z: b.z.Include(p.Z())}
}

// String implements fmt.Stringer.
func (b Box3d) String() string { return fmt.Sprintf("Box3d(%v, %v, %v)", b.x, b.y, b.z) }
