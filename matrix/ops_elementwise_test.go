// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/glassocr/matrix"
	"github.com/stretchr/testify/require"
)

func TestReLU_Values(t *testing.T) {
	A := MustFromSlice(t, 2, 2, -1, 0, 2.5, -0.25)

	R, err := matrix.ReLU(A)
	require.NoError(t, err)
	require.Equal(t, []float32{0, 0, 2.5, 0}, R.Data())
	require.Equal(t, []float32{-1, 0, 2.5, -0.25}, A.Data(), "input must not change")
}

// TestReLU_Idempotent checks ReLU(ReLU(X)) == ReLU(X).
func TestReLU_Idempotent(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		X := RandomDense(t, 8, 8, seed)

		once, err := matrix.ReLU(X)
		require.NoError(t, err)
		twice, err := matrix.ReLU(once)
		require.NoError(t, err)

		require.True(t, once.Equal(twice))
	}
}

func TestReLU_Fallback(t *testing.T) {
	X := RandomDense(t, 3, 3, 9)
	fast, err := matrix.ReLU(X)
	require.NoError(t, err)
	slow, err := matrix.ReLU(hide{X})
	require.NoError(t, err)
	require.True(t, fast.Equal(slow))
}

func TestFlatten(t *testing.T) {
	A := MustFromSlice(t, 2, 3, 1, 2, 3, 4, 5, 6)

	F, err := matrix.Flatten(A)
	require.NoError(t, err)
	require.Equal(t, 6, F.Rows())
	require.Equal(t, 1, F.Cols())
	require.Equal(t, A.Data(), F.Data())

	G, err := matrix.Flatten(hide{A})
	require.NoError(t, err)
	require.True(t, F.Equal(G))
}

func TestApply(t *testing.T) {
	A := MustFromSlice(t, 1, 3, 1, 2, 3)
	B, err := matrix.Apply(A, func(v float32) float32 { return v * v })
	require.NoError(t, err)
	require.Equal(t, []float32{1, 4, 9}, B.Data())
}

// TestArgMax_FirstOccurrence verifies ties resolve to the lowest index.
func TestArgMax_FirstOccurrence(t *testing.T) {
	idx, err := matrix.ArgMax(matrix.NewColumn(0.1, 0.4, 0.4, 0.1))
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	idx, err = matrix.ArgMax(matrix.NewColumn(-3, -2, -5))
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}

func TestArgMax_Empty(t *testing.T) {
	_, err := matrix.ArgMax(MustDense(t, 0, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
