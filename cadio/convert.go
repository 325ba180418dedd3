// SPDX-License-Identifier: MIT

package cadio

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvgeom/box"
	"github.com/katalvlaran/lvgeom/interval"
	"github.com/katalvlaran/lvgeom/line"
	"github.com/katalvlaran/lvgeom/plane"
	"github.com/katalvlaran/lvgeom/point"
	"github.com/katalvlaran/lvgeom/vector"
)

// Line is the CAD-side form of an infinite line.
type Line struct {
	From      v3.Vec
	Direction v3.Vec
}

// Plane is the CAD-side form of an infinite plane.
type Plane struct {
	Origin v3.Vec
	Normal v3.Vec
}

// ToV3 copies v into an sdfx vector.
func ToV3(v vector.Vector3d) v3.Vec { return v3.Vec{X: v.X(), Y: v.Y(), Z: v.Z()} }

// FromV3 copies an sdfx vector into a Vector3d.
func FromV3(v v3.Vec) vector.Vector3d { return vector.Vec3(v.X, v.Y, v.Z) }

// PointToV3 copies p into an sdfx vector.
func PointToV3(p point.Point3d) v3.Vec { return ToV3(p.Vector()) }

// PointFromV3 interprets an sdfx vector as a location.
func PointFromV3(v v3.Vec) point.Point3d { return point.Pt3(v.X, v.Y, v.Z) }

// ToV2 copies v into an sdfx 2D vector.
func ToV2(v vector.Vector2d) v2.Vec { return v2.Vec{X: v.X(), Y: v.Y()} }

// FromV2 copies an sdfx 2D vector into a Vector2d.
func FromV2(v v2.Vec) vector.Vector2d { return vector.Vec2(v.X, v.Y) }

// Point2ToV2 copies p into an sdfx 2D vector.
func Point2ToV2(p point.Point2d) v2.Vec { return ToV2(p.Vector()) }

// Point2FromV2 interprets an sdfx 2D vector as a location.
func Point2FromV2(v v2.Vec) point.Point2d { return point.Pt2(v.X, v.Y) }

// ToR3 copies v into a gonum r3 vector.
func ToR3(v vector.Vector3d) r3.Vec { return r3.Vec{X: v.X(), Y: v.Y(), Z: v.Z()} }

// FromR3 copies a gonum r3 vector into a Vector3d.
func FromR3(v r3.Vec) vector.Vector3d { return vector.Vec3(v.X, v.Y, v.Z) }

// LineToCAD splits l into its anchor and direction.
func LineToCAD(l line.Line3d) Line {
	return Line{From: PointToV3(l.Point()), Direction: ToV3(l.Vector())}
}

// LineFromCAD rebuilds a Line3d.
func LineFromCAD(l Line) line.Line3d {
	return line.New(FromV3(l.Direction), PointFromV3(l.From))
}

// PlaneToCAD splits pl into its anchor and normal.
func PlaneToCAD(pl plane.Plane3d) Plane {
	return Plane{Origin: PointToV3(pl.Point()), Normal: ToV3(pl.Normal())}
}

// PlaneFromCAD rebuilds a Plane3d.
func PlaneFromCAD(pl Plane) plane.Plane3d {
	return plane.New(PointFromV3(pl.Origin), FromV3(pl.Normal))
}

// BoxToBox3 returns the sdfx box spanning b's inclusive and exclusive corners.
func BoxToBox3(b box.Box3d) sdf.Box3 {
	return sdf.Box3{Min: PointToV3(b.Min()), Max: PointToV3(b.Max())}
}

// BoxFromBox3 returns the box with one interval per axis of b.
func BoxFromBox3(b sdf.Box3) box.Box3d {
	return box.FromIntervals(
		interval.New(b.Min.X, b.Max.X),
		interval.New(b.Min.Y, b.Max.Y),
		interval.New(b.Min.Z, b.Max.Z),
	)
}

// BoxToBox2 returns the sdfx 2D box of b.
func BoxToBox2(b box.Box2d) sdf.Box2 {
	x, y := b.X(), b.Y()
	return sdf.Box2{
		Min: v2.Vec{X: x.Start(), Y: y.Start()},
		Max: v2.Vec{X: x.End(), Y: y.End()},
	}
}

// BoxFromBox2 returns the 2D box of b.
func BoxFromBox2(b sdf.Box2) box.Box2d {
	return box.FromIntervals2(interval.New(b.Min.X, b.Max.X), interval.New(b.Min.Y, b.Max.Y))
}
