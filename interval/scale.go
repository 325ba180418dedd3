// SPDX-License-Identifier: MIT

package interval

// Scale maps values proportionally between a domain and a range.
type Scale struct {
	domain, rng Interval
}

// NewScale pairs domain and rng.
func NewScale(domain, rng Interval) Scale {
	return Scale{domain: domain, rng: rng}
}

// DefaultScale maps Unit() onto Unit().
func DefaultScale() Scale { return NewScale(Unit(), Unit()) }

// Domain returns the source interval.
func (s Scale) Domain() Interval { return s.domain }

// Range returns the target interval.
func (s Scale) Range() Interval { return s.rng }

// At maps v from the domain into the range: rng.At(domain.Fraction(v)).
func (s Scale) At(v float64) (float64, error) {
	f, err := s.domain.Fraction(v)
	if err != nil {
		return 0, intervalErrorf(opScaleAt, err)
	}
	return s.rng.At(f), nil
}

// Reverse maps v from the range back into the domain.
func (s Scale) Reverse(v float64) (float64, error) {
	f, err := s.rng.Fraction(v)
	if err != nil {
		return 0, intervalErrorf(opReverse, err)
	}
	return s.domain.At(f), nil
}
