// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glassocr/matrix"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, MustDense(t, 2, 2), matrix.ErrNilMatrix},
		{"typed nil", typedNil, MustDense(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", MustDense(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", MustDense(t, 2, 3), MustDense(t, 2, 3), nil},
		{"hidden equal", hide{MustDense(t, 2, 3)}, MustDense(t, 2, 3), nil},
		{"row mismatch", MustDense(t, 2, 3), MustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", MustDense(t, 2, 3), MustDense(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 10, 1352), MustDense(t, 1352, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 10, 1352), MustDense(t, 1351, 1)),
		matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, MustDense(t, 1, 1)), matrix.ErrNilMatrix)
}

func TestValidateShape(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 28, 28)
	require.NoError(t, matrix.ValidateShape(m, 28, 28))

	err := matrix.ValidateShape(m, 28, 27)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "want 28x27, got 28x28")

	require.ErrorIs(t, matrix.ValidateShape(nil, 1, 1), matrix.ErrNilMatrix)
}
