// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical kernels (Transpose, Mul, MatVec, Inverse) and the ordinary
//     least-squares solver built on them.
//
// Determinism & Performance:
//   - Fixed i→j→k traversal for all loops.
//   - Non-Dense inputs are materialised once through At (asDense); the
//     kernels themselves walk flat row-major buffers.

package matrix

import (
	"fmt"
	"math"
)

// asDense returns m itself when it is a *Dense, otherwise a Dense copy
// built through At.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// Transpose returns mᵀ as a new Dense.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(src.c, src.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < src.r; i++ {
		for j := 0; j < src.c; j++ {
			out.data[j*src.r+i] = src.data[i*src.c+j]
		}
	}

	return out, nil
}

// Mul computes a×b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity: Time O(r·n·c), Space O(r·c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, n, c := ad.r, ad.c, bd.c
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		aik     float64
	)
	// i→k→j keeps both inner accesses sequential in memory.
	for i = 0; i < r; i++ {
		for k = 0; k < n; k++ {
			aik = ad.data[i*n+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < c; j++ {
				out.data[i*c+j] += aik * bd.data[k*c+j]
			}
		}
	}

	return out, nil
}

// MatVec computes m·x.
// Returns ErrDimensionMismatch when len(x) != m.Cols().
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != m.Cols() {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	out := make([]float64, d.r)
	var sum float64
	for i := 0; i < d.r; i++ {
		sum = 0
		base := i * d.c
		for j := 0; j < d.c; j++ {
			sum += d.data[base+j] * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Inverse returns m⁻¹ by Gauss–Jordan elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: validate (non-nil, square) and build the augmented [A | I].
//   - Stage 2: for each column pick the row with the largest |pivot|,
//     swap, normalise, eliminate the column from every other row.
//   - Stage 3: copy the right half into the result.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when the best remaining pivot is exactly zero.
//
// Complexity: Time O(n³), Space O(n²).
//
// Notes:
//   - Near-singular inputs pass through with large entries; callers that
//     can detect degeneracy upstream (e.g. identical abscissae) should.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := src.r
	w := 2 * n
	aug := make([]float64, n*w)
	for i := 0; i < n; i++ {
		copy(aug[i*w:i*w+n], src.data[i*n:(i+1)*n])
		aug[i*w+n+i] = 1
	}

	var (
		col, row, j, p int
		best, pivot, f float64
	)
	for col = 0; col < n; col++ {
		// Partial pivot: largest magnitude in this column at or below col.
		p, best = col, math.Abs(aug[col*w+col])
		for row = col + 1; row < n; row++ {
			if v := math.Abs(aug[row*w+col]); v > best {
				p, best = row, v
			}
		}
		if best == 0 {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		if p != col {
			for j = 0; j < w; j++ {
				aug[col*w+j], aug[p*w+j] = aug[p*w+j], aug[col*w+j]
			}
		}

		pivot = aug[col*w+col]
		for j = 0; j < w; j++ {
			aug[col*w+j] /= pivot
		}
		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			f = aug[row*w+col]
			if f == 0 {
				continue
			}
			for j = 0; j < w; j++ {
				aug[row*w+j] -= f * aug[col*w+j]
			}
		}
	}

	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for row = 0; row < n; row++ {
		copy(out.data[row*n:(row+1)*n], aug[row*w+n:(row+1)*w])
	}

	return out, nil
}

// LeastSquares solves min ‖Xβ − y‖² through the normal equations
// (XᵀX)β = Xᵀy and returns β (len = X.Cols()).
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch when len(y) != X.Rows() or X.Rows() < X.Cols().
//   - ErrNaNInf when y holds a non-finite value.
//   - ErrSingular when XᵀX is singular (collinear columns).
//
// Complexity: Time O(r·c² + c³), Space O(c²).
//
// Notes:
//   - Normal equations square the condition number; fine for the small,
//     well-scaled designs used by the kinetics fits.
func LeastSquares(X Matrix, y []float64) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if len(y) != X.Rows() || X.Rows() < X.Cols() {
		return nil, matrixErrorf(opLeastSquares, ErrDimensionMismatch)
	}
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opLeastSquares, ErrNaNInf)
		}
	}

	Xt, err := Transpose(X)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	XtX, err := Mul(Xt, X)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	inv, err := Inverse(XtX)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	Xty, err := MatVec(Xt, y)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	beta, err := MatVec(inv, Xty)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}

	return beta, nil
}
