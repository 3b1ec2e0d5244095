// SPDX-License-Identifier: MIT
// Package ckd: sentinel error set.
// Only sentinel variables are exposed; callers branch with errors.Is.
// Context is attached at call sites via fmt.Errorf("...: %w", ErrX).

package ckd

import "errors"

var (
	// ErrBinBounds indicates a bin whose lower bound is not strictly
	// below its upper bound.
	ErrBinBounds = errors.New("ckd: bin wmin must be lower than wmax")

	// ErrNilQuad indicates a bin or bin set built without a quadrature rule.
	ErrNilQuad = errors.New("ckd: nil quadrature rule")

	// ErrNilBin indicates a nil bin in a bin-set construction.
	ErrNilBin = errors.New("ckd: nil bin")

	// ErrQuadMismatch indicates a bin referencing a quadrature rule other
	// than its parent bin set's own (pointer identity, not value equality).
	ErrQuadMismatch = errors.New("ckd: all bins must share the same quadrature rule as their parent bin set")

	// ErrBadInterval indicates an interval filter with wmin > wmax.
	ErrBadInterval = errors.New("ckd: interval wmin must be lower or equal to wmax")

	// ErrUnknownFilter indicates an unrecognized bin filter type string.
	ErrUnknownFilter = errors.New("ckd: unknown bin filter type")

	// ErrBadSelector indicates a bin selection spec of unhandled shape.
	ErrBadSelector = errors.New("ckd: unhandled bin selector")

	// ErrBadConvert indicates a loose-input value that cannot be
	// converted to the requested type.
	ErrBadConvert = errors.New("ckd: unconvertible value")
)
