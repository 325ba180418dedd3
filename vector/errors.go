// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every message is prefixed with "vector: ..."; call sites wrap with an
// operation tag via vectorErrorf and callers match with errors.Is.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrNotNumeric is returned when a component is not a finite real number
	// (non-numeric value, NaN or ±Inf).
	ErrNotNumeric = errors.New("vector: component is not a real number")

	// ErrArity is returned when the number of supplied components does not
	// match the vector dimension.
	ErrArity = errors.New("vector: wrong number of components")

	// ErrZeroLength is returned when an operation divides by the length of a
	// vector whose squared length rounds to zero (see IsRoughlyZero).
	ErrZeroLength = errors.New("vector: zero-length vector")

	// ErrTypeMismatch is returned by the polymorphic operators and Match on an
	// unsupported operand type.
	ErrTypeMismatch = errors.New("vector: unsupported operand type")

	// ErrOutOfRange is returned for a positional index outside [-dim, dim).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrUnknownAxis is returned for an axis name other than x, y (or z in 3D).
	ErrUnknownAxis = errors.New("vector: unknown axis")

	// ErrMissingAxis is returned by Match when a mapping lacks a required axis.
	ErrMissingAxis = errors.New("vector: missing axis in mapping")
)

// Operation tags for error wrapping.
const (
	opNew          = "New"
	opParse        = "Parse"
	opMatch        = "Match"
	opAt           = "At"
	opComponent    = "Component"
	opWithAt       = "WithAt"
	opWithComp     = "WithComponent"
	opNormalized   = "Normalized"
	opToLength     = "ToLength"
	opExtendLength = "ExtendLength"
	opPlus         = "Plus"
	opMinus        = "Minus"
	opAngleTo      = "AngleTo"
	opParseAxis    = "ParseAxis"
	opRotate       = "Rotate"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
