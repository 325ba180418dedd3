// Package pointset provides PointSet, an insertion-ordered collection of 3D
// points with constant-time membership and index lookup.
//
// A PointSet pairs an ordered []point.Point3d with a map from each point's
// raw vector.Tuple3 to its position. Positional access (At, Slice) and
// value lookup (IndexOf, Contains) are separate methods.
//
// Duplicates:
//
// By default a PointSet does not reject a point that is already present. The
// new copy is appended and the index entry is moved to the newest position,
// so IndexOf always reports the last occurrence. Union concatenates both
// operands. Build the set with WithUnique() to drop duplicates on insert
// instead; sets derived from a unique set (Union, Copy, ...) stay unique.
//
// Concurrency: a PointSet is a mutable container without internal locking.
// Share it between goroutines only behind external synchronisation.
package pointset
