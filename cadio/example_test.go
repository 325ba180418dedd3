package cadio_test

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/katalvlaran/lvgeom/cadio"
	"github.com/katalvlaran/lvgeom/point"
)

// ExampleMatrixFromM44 recovers the homogeneous matrix of an sdfx translation.
func ExampleMatrixFromM44() {
	m, _ := cadio.MatrixFromM44(sdf.Translate3d(v3.Vec{X: 5, Y: 0, Z: -1}))
	fmt.Print(m)
	p, _ := cadio.ApplyMatrix(m, point.Pt3(1, 1, 1))
	fmt.Println(p)
	// Output:
	// [1, 0, 0, 5]
	// [0, 1, 0, 0]
	// [0, 0, 1, -1]
	// [0, 0, 0, 1]
	// Point3d(6, 1, 0)
}
