// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide element-wise kernels (ReLU, Apply) and reshaping helpers
//     (Flatten, ArgMax) without duplicating tight loops across callers.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

const (
	opReLU    = "ReLU"
	opApply   = "Apply"
	opFlatten = "Flatten"
	opArgMax  = "ArgMax"
)

// mapElements computes out[i,j] = fn(m[i,j]) into a fresh Dense.
// Time: O(r*c). Space: O(r*c). Deterministic flat or i→j loops.
func mapElements(m Matrix, tag string, fn func(float32) float32) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			out.data[idx] = fn(v)
		}

		return out, nil
	}

	// Generic fallback via At (still deterministic).
	var v float32
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out.data[i*cols+j] = fn(v)
		}
	}

	return out, nil
}

// relu is max(0, x) with NaN passing through unchanged.
func relu(v float32) float32 {
	if v < 0 {
		return 0
	}

	return v
}

// ReLU returns a new matrix where every element is max(0, x).
// The operation is idempotent: ReLU(ReLU(X)) == ReLU(X).
// Complexity: O(r*c).
func ReLU(m Matrix) (*Dense, error) { return mapElements(m, opReLU, relu) }

// Apply returns a new matrix with fn applied to every element.
// Complexity: O(r*c).
func Apply(m Matrix, fn func(float32) float32) (*Dense, error) {
	return mapElements(m, opApply, fn)
}

// Flatten returns a (rows*cols)×1 column holding m in row-major order.
// Complexity: O(r*c).
func Flatten(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows*cols, 1)
	if err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}
	if d, ok := m.(*Dense); ok {
		copy(out.data, d.data)

		return out, nil
	}
	var v float32
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opFlatten, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// ArgMax returns the row-major flat index of the largest element.
// Ties resolve to the first occurrence (strict > scan). An empty matrix
// yields ErrDimensionMismatch.
// Complexity: O(r*c).
func ArgMax(m Matrix) (int, error) {
	flat, err := Flatten(m)
	if err != nil {
		return 0, matrixErrorf(opArgMax, err)
	}
	if len(flat.data) == 0 {
		return 0, matrixErrorf(opArgMax, ErrDimensionMismatch)
	}
	best, bestV := 0, flat.data[0]
	for idx := 1; idx < len(flat.data); idx++ {
		if flat.data[idx] > bestV {
			best, bestV = idx, flat.data[idx]
		}
	}

	return best, nil
}
