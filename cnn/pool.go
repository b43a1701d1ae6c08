// SPDX-License-Identifier: MIT

package cnn

import (
	"fmt"

	"github.com/katalvlaran/glassocr/matrix"
)

// DefaultPoolStep is the window side used by the classifier (2×2 pooling).
const DefaultPoolStep = 2

// PooledSide returns the side of a pooled map: floor(side/step).
func PooledSide(side, step int) int {
	if step < 1 {
		return 0
	}

	return side / step
}

// MaxPool downsamples input with non-overlapping step×step windows.
//
// Behavior highlights:
//   - Output is floor(r/step)×floor(c/step).
//   - Rows and columns past the last full window are discarded and never
//     contribute to any output cell.
//   - Each cell is the maximum of its window; the first element seeds the max.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrInvalidStep.
//
// Complexity:
//   - Time O(r*c), Space O(r*c/step²).
func MaxPool(input *matrix.Dense, step int) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(input); err != nil {
		return nil, fmt.Errorf("MaxPool: %w", err)
	}
	if step < 1 {
		return nil, fmt.Errorf("MaxPool: step %d: %w", step, ErrInvalidStep)
	}

	ir, ic := input.Shape()
	outR, outC := ir/step, ic/step
	out, err := matrix.NewDense(outR, outC)
	if err != nil {
		return nil, fmt.Errorf("MaxPool: %w", err)
	}

	src, dst := input.RawData(), out.RawData()
	var i, j, m, n, base int
	var best, v float32
	for i = 0; i < outR; i++ {
		for j = 0; j < outC; j++ {
			base = i*step*ic + j*step
			best = src[base]
			for m = 0; m < step; m++ {
				for n = 0; n < step; n++ {
					v = src[base+m*ic+n]
					if v > best {
						best = v
					}
				}
			}
			dst[i*outC+j] = best
		}
	}

	return out, nil
}
