// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the kernels.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "strconv"

// Matrix represents a two-dimensional mutable array of float32 values.
// Kernels accept the interface and unlock flat-slice fast paths when both
// operands are *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float32, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float32) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Size is a (rows, cols) pair reported by readers such as Dense.Load.
type Size struct {
	Rows int // number of rows read
	Cols int // number of columns read
}

// String renders the size as "RxC".
func (s Size) String() string {
	return strconv.Itoa(s.Rows) + "x" + strconv.Itoa(s.Cols)
}

// Len returns Rows*Cols, the number of elements a matrix of this size holds.
func (s Size) Len() int { return s.Rows * s.Cols }
