// SPDX-License-Identifier: MIT

package cnn

import (
	"fmt"

	"github.com/katalvlaran/glassocr/matrix"
)

// BiasReLU adds the scalar bias to every element of fm and rectifies the
// result. fm is not modified.
func BiasReLU(fm *matrix.Dense, bias float32) (*matrix.Dense, error) {
	shifted, err := matrix.AddScalar(fm, bias)
	if err != nil {
		return nil, fmt.Errorf("BiasReLU: %w", err)
	}
	out, err := matrix.ReLU(shifted)
	if err != nil {
		return nil, fmt.Errorf("BiasReLU: %w", err)
	}

	return out, nil
}

// Concat flattens maps filter-major (all of maps[0] row-major, then maps[1], ...)
// into one column vector.
//
// Errors:
//   - ErrNoFeatureMaps when maps is empty; matrix.ErrNilMatrix for a nil map.
func Concat(maps []*matrix.Dense) (*matrix.Dense, error) {
	if len(maps) == 0 {
		return nil, ErrNoFeatureMaps
	}
	total := 0
	for k, m := range maps {
		if err := matrix.ValidateNotNil(m); err != nil {
			return nil, fmt.Errorf("Concat: map %d: %w", k, err)
		}
		total += m.Rows() * m.Cols()
	}

	out, err := matrix.NewDense(total, 1)
	if err != nil {
		return nil, fmt.Errorf("Concat: %w", err)
	}
	dst, off := out.RawData(), 0
	for _, m := range maps {
		off += copy(dst[off:], m.RawData())
	}

	return out, nil
}

// Affine computes W·x + b (matrix.Mul then matrix.Add).
//
// A mismatch between W and x, or between W·x and b, surfaces as
// matrix.ErrDimensionMismatch. In a wired pipeline it means the weight files
// disagree with the configured filter count or pooled size.
func Affine(w, x, b *matrix.Dense) (*matrix.Dense, error) {
	wx, err := matrix.Mul(w, x)
	if err != nil {
		return nil, fmt.Errorf("Affine: %w", err)
	}
	out, err := matrix.Add(wx, b)
	if err != nil {
		return nil, fmt.Errorf("Affine: %w", err)
	}

	return out, nil
}
