package plane_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/plane"
	"github.com/katalvlaran/lvgeom/point"
	"github.com/katalvlaran/lvgeom/vector"
)

// ExamplePlane3d_IntersectPlane intersects the floor with the wall x = 1.
func ExamplePlane3d_IntersectPlane() {
	floor := plane.New(point.Origin(), vector.WorldZ)
	wall := plane.New(point.Pt3(1, 0, 0), vector.WorldX)
	if l, ok := floor.IntersectPlane(wall); ok {
		fmt.Println(l)
	}
	// Output: Line3d(Vector3d(0, 1, 0), Point3d(1, 0, 0))
}
