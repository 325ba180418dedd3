// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape checks shared by the kernels.
//   - Return plain sentinels (with the offending shapes attached) so facades
//     wrap them uniformly with their operation tag.

package matrix

import "fmt"

// validateSameShape ensures every operand is non-nil and has m's shape.
func validateSameShape(m *Matrix, others []*Matrix) error {
	for k, o := range others {
		if o == nil {
			return fmt.Errorf("operand %d is nil: %w", k+1, ErrDimensionMismatch)
		}
		if o.r != m.r || o.c != m.c {
			return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, m.r, m.c, o.r, o.c)
		}
	}
	return nil
}

// validateMulCompatible ensures a.Cols == b.Rows and reports both shapes.
func validateMulCompatible(a, b *Matrix) error {
	if b == nil {
		return fmt.Errorf("nil operand: %w", ErrDimensionMismatch)
	}
	if a.c != b.r {
		return fmt.Errorf("%w: %dx%d * %dx%d", ErrDimensionMismatch, a.r, a.c, b.r, b.c)
	}
	return nil
}

// validateSquare ensures Rows == Cols.
func validateSquare(m *Matrix) error {
	if m.r != m.c {
		return fmt.Errorf("%w: %dx%d", ErrNonSquare, m.r, m.c)
	}
	return nil
}
