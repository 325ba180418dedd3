// SPDX-License-Identifier: MIT
// Package vector: dimension-independent coordinate helpers shared by
// Vector2d and Vector3d (index resolution, slicing, numeric coercion).

package vector

import "reflect"

// resolveIndex maps a possibly negative position onto [0, n).
func resolveIndex(i, n int) (int, error) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, ErrOutOfRange
	}
	return i, nil
}

// sliceBounds clamps [lo, hi) onto [0, n) the way a sequence slice does:
// negative bounds count from the end, out-of-range bounds are clipped,
// and an inverted range is empty. It never fails.
func sliceBounds(lo, hi, n int) (int, int) {
	clamp := func(i int) int {
		if i < 0 {
			i += n
			if i < 0 {
				return 0
			}
		}
		if i > n {
			return n
		}
		return i
	}
	lo, hi = clamp(lo), clamp(hi)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// sliceOf returns a copy of coords[lo:hi] under sliceBounds rules.
func sliceOf(coords []float64, lo, hi int) []float64 {
	lo, hi = sliceBounds(lo, hi, len(coords))
	out := make([]float64, hi-lo)
	copy(out, coords[lo:hi])
	return out
}

// toFloat coerces any Go integer or float kind to float64.
// Booleans, strings and everything else are rejected.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// parseComponents coerces values into exactly n finite floats.
func parseComponents(values []any, n int) ([]float64, error) {
	if len(values) != n {
		return nil, ErrArity
	}
	out := make([]float64, n)
	for i, v := range values {
		f, ok := toFloat(v)
		if !ok || !isFinite(f) {
			return nil, ErrNotNumeric
		}
		out[i] = f
	}
	return out, nil
}

// matchComponents extracts the first n coordinates from src, which may be a
// CoordinateTuple, a map keyed by axis name, or any numeric slice/array.
// Extra items are ignored; missing items are an error.
func matchComponents(src any, n int) ([]float64, error) {
	switch s := src.(type) {
	case nil:
		return nil, ErrTypeMismatch
	case CoordinateTuple:
		if s.Dim() < n {
			return nil, ErrArity
		}
		return s.Coords()[:n], nil
	case map[string]float64:
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			f, ok := s[axisNames[i]]
			if !ok {
				return nil, ErrMissingAxis
			}
			if !isFinite(f) {
				return nil, ErrNotNumeric
			}
			out[i] = f
		}
		return out, nil
	case map[string]any:
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			raw, ok := s[axisNames[i]]
			if !ok {
				return nil, ErrMissingAxis
			}
			f, ok := toFloat(raw)
			if !ok || !isFinite(f) {
				return nil, ErrNotNumeric
			}
			out[i] = f
		}
		return out, nil
	}

	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, ErrTypeMismatch
	}
	if rv.Len() < n {
		return nil, ErrArity
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		f, ok := toFloat(rv.Index(i).Interface())
		if !ok || !isFinite(f) {
			return nil, ErrNotNumeric
		}
		out[i] = f
	}
	return out, nil
}
