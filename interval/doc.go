// Package interval provides half-open one-dimensional ranges and the
// proportional mapping between two of them.
//
// An Interval is [start, end): Contains(start) is true, Contains(end) is false.
// Intervals are immutable values; every transformation (Include, Scale, Shift)
// returns a new Interval.
//
// Fractional mapping:
//
//	Fraction(v) = (v - start) / length   // 0 at start, 1 at end
//	At(f)       = length*f + start       // inverse of Fraction
//
// A zero-length Interval is a legal value, but Fraction on it reports
// ErrZeroLength instead of producing ±Inf or NaN.
//
// Subdivision (Divide, DivideStep) yields lazy, restartable iter.Seq
// sequences whose last element always ends exactly at end.
//
// A Scale pairs a domain and a range Interval:
//
//	s := interval.NewScale(interval.New(0, 10), interval.New(0, 100))
//	y, _ := s.At(5)        // 50
//	x, _ := s.Reverse(50)  // 5
package interval
