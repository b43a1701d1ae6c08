// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide whole-matrix reductions and normalizations used by the
//     classifier head (softmax normalization) and by feature-map rendering.
//
// Exposed API:
//   - MinMax(X)          -> (lo, hi)  // extreme values, NaN-free inputs assumed
//   - NormalizeSum(X)    -> Y         // Y = X / Σ X (no zero-sum guard)
//   - NormalizeMinMax(X) -> Y         // Y = (X - lo) / (hi - lo); constant X → zeros
//
// Determinism & Performance:
//   - Fixed row-major traversal; float32 accumulation in index order.
//   - Dense fast-paths operate on flat buffers; other Matrix types use At.

package matrix

import "fmt"

const (
	opMinMax          = "MinMax"
	opNormalizeSum    = "NormalizeSum"
	opNormalizeMinMax = "NormalizeMinMax"
)

// values returns the elements of X in row-major order. For *Dense the
// backing slice is returned without copying; callers must not write to it.
func values(X Matrix, tag string) ([]float32, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if d, ok := X.(*Dense); ok {
		return d.data, nil
	}

	r, c := X.Rows(), X.Cols()
	out := make([]float32, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// MinMax returns the smallest and largest element of X.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch for an empty matrix.
//
// Complexity: O(r*c).
func MinMax(X Matrix) (lo, hi float32, err error) {
	data, err := values(X, opMinMax)
	if err != nil {
		return 0, 0, err
	}
	if len(data) == 0 {
		return 0, 0, fmt.Errorf("%s: empty matrix: %w", opMinMax, ErrDimensionMismatch)
	}

	lo, hi = data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi, nil
}

// NormalizeSum divides every element of X by the sum of all elements.
//
// Implementation:
//   - Stage 1: sum in row-major order (float32).
//   - Stage 2: divide a copy element-wise by the sum.
//
// Behavior highlights:
//   - There is no zero-sum guard: a zero or infinite sum yields ±Inf/NaN
//     entries per IEEE-754. For non-negative input this is L1 normalization.
//
// Complexity: O(r*c) time, O(r*c) space.
func NormalizeSum(X Matrix) (*Dense, error) {
	data, err := values(X, opNormalizeSum)
	if err != nil {
		return nil, err
	}
	var sum float32
	for _, v := range data {
		sum += v
	}

	out, err := NewDense(X.Rows(), X.Cols())
	if err != nil {
		return nil, matrixErrorf(opNormalizeSum, err)
	}
	for i, v := range data {
		out.data[i] = v / sum
	}

	return out, nil
}

// NormalizeMinMax rescales X linearly so its minimum maps to 0 and its
// maximum to 1. A constant matrix maps to all zeros; an empty one to an
// empty result.
//
// Complexity: O(r*c) time, O(r*c) space.
func NormalizeMinMax(X Matrix) (*Dense, error) {
	data, err := values(X, opNormalizeMinMax)
	if err != nil {
		return nil, err
	}
	out, err := NewDense(X.Rows(), X.Cols())
	if err != nil {
		return nil, matrixErrorf(opNormalizeMinMax, err)
	}
	if len(data) == 0 {
		return out, nil
	}

	lo, hi, err := MinMax(X)
	if err != nil {
		return nil, matrixErrorf(opNormalizeMinMax, err)
	}
	span := hi - lo
	if span == 0 {
		return out, nil
	}
	for i, v := range data {
		out.data[i] = (v - lo) / span
	}

	return out, nil
}
