// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type and force the At path.
type hide struct{ matrix.Matrix }

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestNewDense_Shape(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Zero(t, mustAt(t, m, 1, 2))
}

func TestNewFromRows_Validation(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrBadShape, "ragged rows")
	_, err = matrix.NewFromRows([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.Set(1, 0, 9))
	assert.Equal(t, 9.0, mustAt(t, m, 1, 0))

	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 100))
	assert.Equal(t, 1.0, mustAt(t, m, 0, 0), "clone must be independent")
	assert.Equal(t, "[1, 2]\n[9, 4]\n", m.String())
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	for _, in := range []matrix.Matrix{m, hide{m}} {
		tr, err := matrix.Transpose(in)
		require.NoError(t, err)
		assert.Equal(t, 3, tr.Rows())
		assert.Equal(t, 2, tr.Cols())
		assert.Equal(t, 6.0, mustAt(t, tr, 2, 1))
		assert.Equal(t, 2.0, mustAt(t, tr, 1, 0))
	}

	_, err := matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{5, 6}, {7, 8}})
	p, err := matrix.Mul(a, hide{b})
	require.NoError(t, err)
	assert.Equal(t, 19.0, mustAt(t, p, 0, 0))
	assert.Equal(t, 22.0, mustAt(t, p, 0, 1))
	assert.Equal(t, 43.0, mustAt(t, p, 1, 0))
	assert.Equal(t, 50.0, mustAt(t, p, 1, 1))

	_, err = matrix.Mul(a, mustRows(t, [][]float64{{1, 2, 3}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	out, err := matrix.MatVec(m, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1}, out)

	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestInverse(t *testing.T) {
	t.Parallel()

	// Zero in the leading position forces a row swap.
	m := mustRows(t, [][]float64{{0, 1}, {2, 3}})
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)

	id, err := matrix.Mul(m, inv)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, mustAt(t, id, i, j), 1e-12)
		}
	}

	_, err = matrix.Inverse(mustRows(t, [][]float64{{1, 2}, {2, 4}}))
	assert.ErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.Inverse(mustRows(t, [][]float64{{1, 2, 3}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestLeastSquares_ExactLine(t *testing.T) {
	t.Parallel()

	// y = 2x + 1 sampled exactly.
	X := mustRows(t, [][]float64{{0, 1}, {1, 1}, {2, 1}, {3, 1}})
	beta, err := matrix.LeastSquares(X, []float64{1, 3, 5, 7})
	require.NoError(t, err)
	require.Len(t, beta, 2)
	assert.InDelta(t, 2, beta[0], 1e-12)
	assert.InDelta(t, 1, beta[1], 1e-12)
}

func TestLeastSquares_Errors(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{{1, 1}, {1, 1}, {1, 1}})
	_, err := matrix.LeastSquares(X, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrSingular, "collinear columns")

	_, err = matrix.LeastSquares(X, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.LeastSquares(X, []float64{1, math.Inf(1), 3})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.LeastSquares(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
