// SPDX-License-Identifier: MIT
// Package interval: sentinel error set.

package interval

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroLength is returned by Fraction on an interval whose start equals its end.
	ErrZeroLength = errors.New("interval: zero-length interval")

	// ErrInvalidDivisor is returned by Divide for n <= 0 and by DivideStep for
	// a zero or non-finite step, or one that would need more than MaxParts parts.
	ErrInvalidDivisor = errors.New("interval: invalid divisor")

	// ErrEmpty is returned by Bounds when no values are given.
	ErrEmpty = errors.New("interval: no values")
)

const (
	opFraction   = "Fraction"
	opDivide     = "Divide"
	opDivideStep = "DivideStep"
	opBounds     = "Bounds"
	opScaleAt    = "Scale.At"
	opReverse    = "Scale.Reverse"
)

func intervalErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
