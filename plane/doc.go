// Package plane provides Plane3d, an infinite plane given by a point on it
// and a normal vector, and its intersections with planes and lines.
//
// The plane equation is n·x + d = 0 with d = -(n·p). The normal need not be
// unit length; DistanceTo normalises on the fly.
//
// Intersections:
//
//   - IntersectPlane returns the common line of two planes, or false when the
//     planes are parallel (the cross product of the normals rounds to zero).
//   - IntersectLine returns the point where a line meets the plane, or
//     ErrParallel when the line direction is perpendicular to the normal.
//
// Parallel cases are logged at Debug through lvgeom.Logger.
package plane
