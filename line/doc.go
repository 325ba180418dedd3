// Package line provides Line3d, an infinite line given by a direction vector
// and a point it passes through.
//
// Parametrically a line is P(t) = Point() + t*Vector(). A zero direction is a
// legal value, but operations that project onto the line (ClosestPoint,
// DistanceTo) report ErrDegenerate for it.
package line
