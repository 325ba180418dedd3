package interval_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/interval"
)

// ExampleInterval_Divide splits [0, 10) into four equal parts.
func ExampleInterval_Divide() {
	parts, _ := interval.New(0, 10).Divide(4)
	for p := range parts {
		fmt.Println(p)
	}
	// Output:
	// Interval[0, 2.5)
	// Interval[2.5, 5)
	// Interval[5, 7.5)
	// Interval[7.5, 10)
}

// ExampleScale maps Celsius onto Fahrenheit.
func ExampleScale() {
	c2f := interval.NewScale(interval.New(0, 100), interval.New(32, 212))
	f, _ := c2f.At(37)
	c, _ := c2f.Reverse(f)
	fmt.Printf("%.1f -> %.1f -> %.1f\n", 37.0, f, c)
	// Output: 37.0 -> 98.6 -> 37.0
}
