// SPDX-License-Identifier: MIT

package vector

// Named unit axes. These are values of immutable types; copies handed out
// to callers cannot alter them.
var (
	// WorldX is the 3D world x axis.
	WorldX = Vec3(1, 0, 0)
	// WorldY is the 3D world y axis.
	WorldY = Vec3(0, 1, 0)
	// WorldZ is the 3D world z axis.
	WorldZ = Vec3(0, 0, 1)

	// PageX is the 2D page x axis.
	PageX = Vec2(1, 0)
	// PageY is the 2D page y axis.
	PageY = Vec2(0, 1)
)
