// SPDX-License-Identifier: MIT

package pointset

import (
	"iter"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvgeom"
	"github.com/katalvlaran/lvgeom/point"
	"github.com/katalvlaran/lvgeom/vector"
)

// PointSet is an ordered collection of points with an index by value.
// The zero value is not usable; build one with New, NewWith or FromSlices.
type PointSet struct {
	points []point.Point3d
	index  map[vector.Tuple3]int
	opts   Options
}

// NewWith returns an empty PointSet configured by opts.
func NewWith(opts ...Option) *PointSet {
	return &PointSet{
		index: make(map[vector.Tuple3]int),
		opts:  gatherOptions(opts...),
	}
}

// New returns a PointSet holding values in order with default options.
// Every value must be three-dimensional (ErrDimension).
func New(values ...vector.CoordinateTuple) (*PointSet, error) {
	s := NewWith()
	if err := s.insert(values); err != nil {
		return nil, pointsetErrorf(opNew, err)
	}
	return s, nil
}

// FromSlices builds a PointSet from raw coordinate rows, using the first
// three items of each row. A shorter row yields ErrDimension.
func FromSlices(rows [][]float64, opts ...Option) (*PointSet, error) {
	s := NewWith(opts...)
	for _, r := range rows {
		if len(r) < 3 {
			return nil, pointsetErrorf(opFromSlices, ErrDimension)
		}
		p, err := point.New3(r[0], r[1], r[2])
		if err != nil {
			return nil, pointsetErrorf(opFromSlices, err)
		}
		s.add(p)
	}
	return s, nil
}

// Empty returns a new, empty set configured with s's options.
func (s *PointSet) Empty() *PointSet { return s.derive() }

// derive returns an empty set sharing s's options.
func (s *PointSet) derive() *PointSet {
	d := NewWith()
	d.opts = s.opts
	return d
}

// toPoint converts c to a location. NaN and ±Inf coordinates are rejected
// with vector.ErrNotNumeric: such a key never matches in the index.
func toPoint(c vector.CoordinateTuple) (point.Point3d, error) {
	if c == nil || c.Dim() != 3 {
		return point.Point3d{}, ErrDimension
	}
	xs := c.Coords()
	return point.New3(xs[0], xs[1], xs[2])
}

// insert validates every value before adding any of them.
func (s *PointSet) insert(values []vector.CoordinateTuple) error {
	pts := make([]point.Point3d, len(values))
	for i, c := range values {
		p, err := toPoint(c)
		if err != nil {
			return err
		}
		pts[i] = p
	}
	for _, p := range pts {
		s.add(p)
	}
	return nil
}

func (s *PointSet) add(p point.Point3d) {
	key := p.Tuple()
	if prev, ok := s.index[key]; ok {
		if s.opts.unique {
			return
		}
		lvgeom.Logger().Debug("pointset: duplicate point, index overwritten",
			"point", p.String(), "old", prev, "new", len(s.points))
	}
	s.index[key] = len(s.points)
	s.points = append(s.points, p)
}

// Points returns a copy of the stored points in order.
func (s *PointSet) Points() []point.Point3d {
	out := make([]point.Point3d, len(s.points))
	copy(out, s.points)
	return out
}

// SetPoints replaces the whole content and rebuilds the index.
// On error s is left unchanged.
func (s *PointSet) SetPoints(values ...vector.CoordinateTuple) error {
	fresh := s.derive()
	if err := fresh.insert(values); err != nil {
		return pointsetErrorf(opSetPoints, err)
	}
	s.points, s.index = fresh.points, fresh.index
	return nil
}

// Extend appends values in order. Nothing is added if any value is not 3D.
func (s *PointSet) Extend(values ...vector.CoordinateTuple) error {
	if err := s.insert(values); err != nil {
		return pointsetErrorf(opExtend, err)
	}
	return nil
}

// Append adds a single value.
func (s *PointSet) Append(c vector.CoordinateTuple) error {
	p, err := toPoint(c)
	if err != nil {
		return pointsetErrorf(opAppend, err)
	}
	s.add(p)
	return nil
}

// Len returns the number of stored points.
func (s *PointSet) Len() int { return len(s.points) }

// At returns the point at position i; negative i counts from the end.
func (s *PointSet) At(i int) (point.Point3d, error) {
	n := len(s.points)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return point.Point3d{}, pointsetErrorf(opAt, ErrOutOfRange)
	}
	return s.points[i], nil
}

// Slice returns a copy of the points in [lo, hi). Negative bounds count from
// the end and out-of-range bounds are clamped, so Slice never fails.
func (s *PointSet) Slice(lo, hi int) []point.Point3d {
	n := len(s.points)
	clamp := func(i int) int {
		if i < 0 {
			i += n
		}
		return max(0, min(i, n))
	}
	lo, hi = clamp(lo), clamp(hi)
	if lo >= hi {
		return []point.Point3d{}
	}
	out := make([]point.Point3d, hi-lo)
	copy(out, s.points[lo:hi])
	return out
}

// IndexOf returns the recorded position of c.
func (s *PointSet) IndexOf(c vector.CoordinateTuple) (int, error) {
	p, err := toPoint(c)
	if err != nil {
		return -1, pointsetErrorf(opIndexOf, err)
	}
	i, ok := s.index[p.Tuple()]
	if !ok {
		return -1, pointsetErrorf(opIndexOf, ErrNotFound)
	}
	return i, nil
}

// Contains reports whether a point equal to c is stored.
func (s *PointSet) Contains(c vector.CoordinateTuple) bool {
	p, err := toPoint(c)
	if err != nil {
		return false
	}
	_, ok := s.index[p.Tuple()]
	return ok
}

// All yields (position, point) pairs in insertion order.
func (s *PointSet) All() iter.Seq2[int, point.Point3d] {
	return func(yield func(int, point.Point3d) bool) {
		for i, p := range s.points {
			if !yield(i, p) {
				return
			}
		}
	}
}

// IsSubset reports whether every point of s is in other (s <= other).
func (s *PointSet) IsSubset(other *PointSet) bool {
	for _, p := range s.points {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every point of other is in s (s >= other).
func (s *PointSet) IsSuperset(other *PointSet) bool {
	return other.IsSubset(s)
}

// Union returns the points of s followed by the points of other.
// Without WithUnique the result may hold duplicates.
func (s *PointSet) Union(other *PointSet) *PointSet {
	out := s.derive()
	for _, p := range s.points {
		out.add(p)
	}
	for _, p := range other.points {
		out.add(p)
	}
	return out
}

// Intersection returns the points of other that are also in s, in other's order.
func (s *PointSet) Intersection(other *PointSet) *PointSet {
	out := s.derive()
	for _, p := range other.points {
		if s.Contains(p) {
			out.add(p)
		}
	}
	return out
}

// Difference returns the points of s that are not in other.
func (s *PointSet) Difference(other *PointSet) *PointSet {
	out := s.derive()
	for _, p := range s.points {
		if !other.Contains(p) {
			out.add(p)
		}
	}
	return out
}

// SymmetricDifference returns the points in exactly one of s and other:
// s's share first, then other's.
func (s *PointSet) SymmetricDifference(other *PointSet) *PointSet {
	out := s.Difference(other)
	for _, p := range other.points {
		if !s.Contains(p) {
			out.add(p)
		}
	}
	return out
}

// Copy returns an independent set with the same points in the same order.
func (s *PointSet) Copy() *PointSet {
	out := s.derive()
	out.points = s.Points()
	for k, v := range s.index {
		out.index[k] = v
	}
	return out
}

// String implements fmt.Stringer.
func (s *PointSet) String() string {
	var b strings.Builder
	b.WriteString("PointSet(")
	b.WriteString(strconv.Itoa(len(s.points)))
	b.WriteString(")[")
	for i, p := range s.points {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString("]")
	return b.String()
}
