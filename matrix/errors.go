// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms return these sentinels and tests check them via errors.Is.
// No algorithm panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Context is
// attached at the call site with fmt.Errorf("ctx: %w", ErrX).

var (
	// ErrBadShape is returned when requested shape is invalid (r<=0, c<=0 or ragged rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands, e.g. Mul where
	// a.Cols != b.Rows, or a vector whose length differs from Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when det(M) shares a factor with 26, so M has
	// no inverse in Z/26.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
