// Package lvgeom is a small, pure-Go toolbox of 2D/3D geometry primitives:
// vectors, points, intervals, matrices, lines and planes, plus an ordered
// point set and axis-aligned boxes.
//
// 🚀 What is inside?
//
//	• vector/   Vector2d, Vector3d, raw Tuple2/Tuple3 keys, WorldX/Y/Z, PageX/Y
//	• point/    Point2d, Point3d (locations built on vectors by composition)
//	• pointset/ ordered point collection with O(1) membership and set algebra
//	• interval/ half-open Interval and proportional Scale mapping
//	• box/      Box2d, Box3d built from intervals
//	• matrix/   immutable rectangular Matrix: product, transpose, row/cell maps
//	• line/     Line3d (direction + anchor point)
//	• plane/    Plane3d with plane∩plane and plane∩line intersection
//	• cadio/    field-for-field conversion to and from sdfx / gonum geometry
//
// ✨ Guarantees
//
//   - Value semantics: every operation returns a fresh value; no in-place mutators.
//   - Explicit errors: sentinel errors per package, matched with errors.Is.
//   - One zero policy: a fixed 7-decimal rounding test (vector.RoundingDigits).
//   - Silent by default: logging goes through SetLogger (log/slog).
//
// Quick example:
//
//	v := vector.Vec3(0, 1, 2)
//	longer, _ := v.ExtendLength(1) // length grows by exactly 1
//
//	go get github.com/katalvlaran/lvgeom
package lvgeom
