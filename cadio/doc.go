// Package cadio converts lvgeom values to and from the types of the sdfx CAD
// kernel (github.com/deadsy/sdfx) and gonum's r3 vectors, and writes 2D
// geometry to DXF.
//
// Conversions are field-for-field copies that preserve coordinate order, so
// every To/From pair round-trips exactly:
//
//	vector.Vector3d, point.Point3d  <->  v3.Vec
//	vector.Vector2d, point.Point2d  <->  v2.Vec
//	line.Line3d                     <->  Line{From, Direction}
//	plane.Plane3d                   <->  Plane{Origin, Normal}
//	box.Box3d, box.Box2d            <->  sdf.Box3, sdf.Box2
//	vector.Vector3d                 <->  r3.Vec
//	*matrix.Matrix (4×4)            <->  sdf.M44
//
// sdfx has a single vector type for points and directions. Import maps a
// bare v3.Vec to vector.Vector3d; use PointFromV3 when the value is a location.
//
// Transforms: MatrixFromM44 and M44FromMatrix copy the 4×4 cells between an
// sdf.M44 and a Matrix. TransformPoints applies an M44 to a whole
// pointset.PointSet and keeps the set's options.
package cadio
