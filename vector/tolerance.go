// SPDX-License-Identifier: MIT

package vector

import "math"

// Numeric zero policy (single source of truth for the whole module).
const (
	// RoundingDigits is the number of decimal places a value is rounded to
	// before it is compared with zero.
	RoundingDigits = 7

	// ZeroTolerance is 10^-RoundingDigits. A value x is roughly zero when
	// |x| < ZeroTolerance/2, i.e. it rounds to 0 at RoundingDigits decimals.
	ZeroTolerance = 1e-7
)

// IsRoughlyZero reports whether x rounds to zero at RoundingDigits decimals.
// NaN is never roughly zero.
func IsRoughlyZero(x float64) bool {
	return math.Round(x/ZeroTolerance) == 0
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
