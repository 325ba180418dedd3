// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/lvgeom/vector"
)

// MaxParts bounds the number of parts DivideStep may produce.
const MaxParts = math.MaxInt32

// Interval is the half-open range [start, end).
// The zero value is the degenerate interval [0, 0).
type Interval struct {
	start, end float64
}

// Unit returns [0, 1).
func Unit() Interval { return Interval{start: 0, end: 1} }

// Width returns [0, w).
func Width(w float64) Interval { return Interval{start: 0, end: w} }

// New returns [start, end) with the bounds taken literally.
// start > end is allowed and yields a negative Length.
func New(start, end float64) Interval { return Interval{start: start, end: end} }

// Of is New for any integer or float bound type.
func Of[T vector.Scalar](start, end T) Interval {
	return Interval{start: float64(start), end: float64(end)}
}

// Bounds returns [min(values), max(values)).
func Bounds(values ...float64) (Interval, error) {
	if len(values) == 0 {
		return Interval{}, intervalErrorf(opBounds, ErrEmpty)
	}
	return Interval{start: slices.Min(values), end: slices.Max(values)}, nil
}

// FromValues builds an Interval from a variable number of values:
//
//	0 values  -> Unit()
//	1 value   -> Width(v)
//	2 values  -> New(a, b)
//	more      -> Bounds(values...)
func FromValues(values ...float64) Interval {
	switch len(values) {
	case 0:
		return Unit()
	case 1:
		return Width(values[0])
	case 2:
		return New(values[0], values[1])
	default:
		iv, _ := Bounds(values...) // non-empty here
		return iv
	}
}

// Start returns the inclusive lower bound.
func (iv Interval) Start() float64 { return iv.start }

// End returns the exclusive upper bound.
func (iv Interval) End() float64 { return iv.end }

// Length returns end - start.
func (iv Interval) Length() float64 { return iv.end - iv.start }

// Fraction returns (v - start) / length.
func (iv Interval) Fraction(v float64) (float64, error) {
	length := iv.Length()
	if length == 0 {
		return 0, intervalErrorf(opFraction, ErrZeroLength)
	}
	return (v - iv.start) / length, nil
}

// Fractions applies Fraction to every value.
func (iv Interval) Fractions(values ...float64) ([]float64, error) {
	if iv.Length() == 0 {
		return nil, intervalErrorf(opFraction, ErrZeroLength)
	}
	length := iv.Length()
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v - iv.start) / length
	}
	return out, nil
}

// Contains reports start <= v < end.
func (iv Interval) Contains(v float64) bool {
	return iv.start <= v && v < iv.end
}

// At returns length*f + start.
func (iv Interval) At(f float64) float64 {
	return iv.Length()*f + iv.start
}

// AtAll applies At to every fraction.
func (iv Interval) AtAll(fs ...float64) []float64 {
	out := make([]float64, len(fs))
	for i, f := range fs {
		out[i] = iv.At(f)
	}
	return out
}

// Divide splits the interval into n contiguous parts of equal width.
// The last part ends exactly at End.
func (iv Interval) Divide(n int) (iter.Seq[Interval], error) {
	if n <= 0 {
		return nil, intervalErrorf(opDivide, ErrInvalidDivisor)
	}
	step := iv.Length() / float64(n)
	return iv.steps(n, step), nil
}

// DivideStep splits the interval into ceil(|length/step|) parts of width
// |step|, walking from Start toward End. The last part is pinned to End and
// holds the remainder. A step so small that the part count would exceed
// MaxParts yields ErrInvalidDivisor.
func (iv Interval) DivideStep(step float64) (iter.Seq[Interval], error) {
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, intervalErrorf(opDivideStep, ErrInvalidDivisor)
	}
	length := iv.Length()
	parts := math.Ceil(math.Abs(length / step))
	if math.IsNaN(parts) || parts > MaxParts {
		return nil, intervalErrorf(opDivideStep, ErrInvalidDivisor)
	}
	n := int(parts)
	width := math.Copysign(step, length)
	return iv.steps(n, width), nil
}

// steps yields n parts starting at iv.start with boundaries start + i*width.
func (iv Interval) steps(n int, width float64) iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		lo := iv.start
		for i := 1; i <= n; i++ {
			hi := iv.end
			if i < n {
				hi = iv.start + float64(i)*width
			}
			if !yield(Interval{start: lo, end: hi}) {
				return
			}
			lo = hi
		}
	}
}

// Include returns the smallest interval spanning iv and v.
// A contained v returns an identical copy.
func (iv Interval) Include(v float64) Interval {
	if iv.Contains(v) {
		return iv
	}
	return Interval{start: min(iv.start, iv.end, v), end: max(iv.start, iv.end, v)}
}

// Scale returns [start*k, end*k).
func (iv Interval) Scale(k float64) Interval {
	return Interval{start: iv.start * k, end: iv.end * k}
}

// Shift returns [start+k, end+k).
func (iv Interval) Shift(k float64) Interval {
	return Interval{start: iv.start + k, end: iv.end + k}
}

// String implements fmt.Stringer: "Interval[0, 10)".
func (iv Interval) String() string {
	return fmt.Sprintf("Interval[%g, %g)", iv.start, iv.end)
}
