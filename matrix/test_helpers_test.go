// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/glassocr/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Embed matrix.Matrix to forward all methods.
//   - Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromSlice builds an r×c *Dense from row-major values or fails the test.
func MustFromSlice(tb testing.TB, r, c int, values ...float32) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromSlice(r, c, values)
	if err != nil {
		tb.Fatalf("NewFromSlice(%d,%d): %v", r, c, err)
	}

	return m
}

// RandomDense RETURNS an r×c *Dense filled from a seeded normal source.
// Deterministic for a fixed seed.
func RandomDense(tb testing.TB, r, c int, seed uint64) *matrix.Dense {
	tb.Helper()
	m := MustDense(tb, r, c)
	m.SetRandom(matrix.WithSeed(seed))

	return m
}
