// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/glassocr/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// toGonum copies a Dense into a float64 gonum matrix (oracle for Mul).
func toGonum(m *matrix.Dense) *mat.Dense {
	data := make([]float64, 0, m.Rows()*m.Cols())
	for _, v := range m.Data() {
		data = append(data, float64(v))
	}

	return mat.NewDense(m.Rows(), m.Cols(), data)
}

func TestAdd_DimensionMismatch(t *testing.T) {
	_, err := matrix.Add(MustDense(t, 2, 3), MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(MustDense(t, 2, 3), MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAdd_Nil(t *testing.T) {
	var nilDense *matrix.Dense
	_, err := matrix.Add(nilDense, MustDense(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Add(MustDense(t, 1, 1), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAdd_SelfIsDouble checks A+A == 2A element-wise for random matrices.
func TestAdd_SelfIsDouble(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		A := RandomDense(t, 4, 7, seed)

		sum, err := matrix.Add(A, A)
		require.NoError(t, err)
		twice, err := matrix.Scale(A, 2)
		require.NoError(t, err)

		require.True(t, sum.Equal(twice), "seed %d", seed)
	}
}

// TestAdd_FreshResult ensures operands are never aliased by the result.
func TestAdd_FreshResult(t *testing.T) {
	A := MustFromSlice(t, 1, 2, 1, 2)
	B := MustFromSlice(t, 1, 2, 10, 20)

	C, err := matrix.Add(A, B)
	require.NoError(t, err)
	require.Equal(t, []float32{11, 22}, C.Data())

	require.NoError(t, C.Set(0, 0, -1))
	require.Equal(t, []float32{1, 2}, A.Data())
	require.Equal(t, []float32{10, 20}, B.Data())
}

// TestAdd_FallbackMatchesFastPath compares the *Dense path against the interface path.
func TestAdd_FallbackMatchesFastPath(t *testing.T) {
	A := RandomDense(t, 5, 5, 7)
	B := RandomDense(t, 5, 5, 8)

	fast, err := matrix.Add(A, B)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{A}, B)
	require.NoError(t, err)

	require.True(t, fast.Equal(slow))
}

func TestMul_DimensionMismatch(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_Shape(t *testing.T) {
	C, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 3, 5))
	require.NoError(t, err)
	require.Equal(t, 2, C.Rows())
	require.Equal(t, 5, C.Cols())
}

func TestMul_Small(t *testing.T) {
	A := MustFromSlice(t, 2, 3,
		1, 2, 3,
		4, 5, 6)
	B := MustFromSlice(t, 3, 2,
		7, 8,
		9, 10,
		11, 12)

	C, err := matrix.Mul(A, B)
	require.NoError(t, err)
	require.Equal(t, []float32{58, 64, 139, 154}, C.Data())
}

// TestMul_Identity checks A·I == A exactly.
func TestMul_Identity(t *testing.T) {
	A := RandomDense(t, 6, 4, 42)
	I := MustDense(t, 4, 4)
	for i := 0; i < 4; i++ {
		require.NoError(t, I.Set(i, i, 1))
	}

	C, err := matrix.Mul(A, I)
	require.NoError(t, err)
	require.True(t, A.Equal(C))
}

// TestMul_FallbackMatchesFastPath asserts both loop orders agree bitwise.
func TestMul_FallbackMatchesFastPath(t *testing.T) {
	A := RandomDense(t, 7, 9, 3)
	B := RandomDense(t, 9, 4, 4)

	fast, err := matrix.Mul(A, B)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{A}, hide{B})
	require.NoError(t, err)

	require.True(t, fast.Equal(slow))
}

// TestMul_AgainstGonum cross-checks the product with gonum's float64 Mul.
func TestMul_AgainstGonum(t *testing.T) {
	A := RandomDense(t, 10, 32, 11)
	B := RandomDense(t, 32, 1, 12)

	C, err := matrix.Mul(A, B)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(toGonum(A), toGonum(B))

	for i := 0; i < C.Rows(); i++ {
		got, err := C.At(i, 0)
		require.NoError(t, err)
		assert.InDelta(t, want.At(i, 0), float64(got), 1e-4)
	}
}

func TestAddScalar(t *testing.T) {
	A := MustFromSlice(t, 1, 3, -1, 0, 1)
	B, err := matrix.AddScalar(A, 0.5)
	require.NoError(t, err)
	require.Equal(t, []float32{-0.5, 0.5, 1.5}, B.Data())
}
