package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/matrix"
)

// ExampleMatrix_Mul multiplies a 2×3 by a 3×2 matrix.
func ExampleMatrix_Mul() {
	a, _ := matrix.New([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.New([][]float64{{7, 8}, {9, 10}, {11, 12}})
	p, _ := a.Mul(b)
	fmt.Print(p)
	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleNew shows the identity default for an empty table.
func ExampleNew() {
	m, _ := matrix.New(nil, matrix.WithShape(2, 2))
	fmt.Print(m)
	// Output:
	// [1, 0]
	// [0, 1]
}
