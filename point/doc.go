// Package point provides Point2d and Point3d: locations in space.
//
// A point holds a vector by composition and offers the same coordinate
// accessors, but its own operations speak about locations:
//
//   - DistanceTo(q): |q - p|
//   - VectorTo(q)  : the free vector q - p (a vector.Vector3d, not a point)
//   - Translate(v) : p moved by v
//
// Points implement vector.CoordinateTuple, so they compare structurally with
// vectors and raw tuples and share the vector.Tuple3 key space.
package point
