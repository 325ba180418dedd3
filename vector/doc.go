// Package vector provides immutable 2D and 3D vector value types.
//
// The package provides:
//
//   - Vector2d and Vector3d: fixed-arity coordinate tuples with arithmetic,
//     normalization and explicit, separately named accessors
//     (At, Component, Slice) in place of a dual-mode subscript.
//   - Tuple2 and Tuple3: plain comparable coordinate arrays. Every vector
//     converts to its tuple with Tuple(), so vectors, points and raw tuples
//     share one map-key space and compare structurally.
//   - CoordinateTuple: the shared capability interface implemented by
//     vectors, points and raw tuples.
//   - WorldX, WorldY, WorldZ and PageX, PageY: named unit axes.
//
// Numeric policy:
//
//	A quantity is treated as zero when it rounds to 0 at RoundingDigits (7)
//	decimal places. The policy is fixed, not adaptive, and is shared by every
//	package in the module (normalization, plane parallelism, ...).
//
// Operator semantics:
//
//	number + vector  → ExtendLength: grow the amplitude along the vector's own direction
//	vector + vector  → Add: elementwise
//	number * vector  → Scale
//	vector * vector  → Dot
//
// Plus and Minus dispatch on the operand type for callers that need a single
// polymorphic entry point; anything else fails with ErrTypeMismatch.
package vector
