// SPDX-License-Identifier: MIT

package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Implementations must bounds-check At/Set and return ErrOutOfRange
// instead of panicking.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At retrieves the element at (i, j).
	At(i, j int) (float64, error)

	// Set assigns v at (i, j).
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy. Complexity: O(rows*cols).
	Clone() Matrix
}
