// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels, wrapped with the operation tag via
// matrixErrorf; callers match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested shape is invalid (r<=0 or c<=0,
	// or ragged rows in NewFromRows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when no non-zero pivot is left during inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// Operation tags for error wrapping.
const (
	opNewFromRows  = "NewFromRows"
	opTranspose    = "Transpose"
	opMul          = "Mul"
	opMatVec       = "MatVec"
	opInverse      = "Inverse"
	opLeastSquares = "LeastSquares"
)

// matrixErrorf wraps err with an operation tag; err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an index error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
