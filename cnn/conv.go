// SPDX-License-Identifier: MIT

package cnn

import (
	"fmt"

	"github.com/katalvlaran/glassocr/matrix"
)

// Convolve computes the valid cross-correlation of input with kernel.
//
// Implementation:
//   - Stage 1: validate non-nil operands, odd kernel sides, kernel fits input.
//   - Stage 2: out[i,j] = Σ_m Σ_n input[i+m, j+n] * kernel[m, n] over flat buffers.
//
// Behavior highlights:
//   - No padding, stride 1; output is (in.r-k.r+1)×(in.c-k.c+1).
//   - The kernel is used as-is (correlation, not flipped convolution).
//   - Accumulation order is m→n ascending, starting from zero.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrInvalidKernelSize, matrix.ErrDimensionMismatch
//     (kernel larger than input).
//
// Complexity:
//   - Time O(out.r*out.c*k.r*k.c), Space O(out.r*out.c).
func Convolve(input, kernel *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(input); err != nil {
		return nil, fmt.Errorf("Convolve: input: %w", err)
	}
	if err := matrix.ValidateNotNil(kernel); err != nil {
		return nil, fmt.Errorf("Convolve: kernel: %w", err)
	}
	kr, kc := kernel.Shape()
	if kr%2 == 0 || kc%2 == 0 {
		return nil, fmt.Errorf("Convolve: kernel %dx%d: %w", kr, kc, ErrInvalidKernelSize)
	}
	ir, ic := input.Shape()
	if kr > ir || kc > ic {
		return nil, fmt.Errorf("Convolve: kernel %dx%d exceeds input %dx%d: %w",
			kr, kc, ir, ic, matrix.ErrDimensionMismatch)
	}

	outR, outC := ir-kr+1, ic-kc+1
	out, err := matrix.NewDense(outR, outC)
	if err != nil {
		return nil, fmt.Errorf("Convolve: %w", err)
	}

	src, k, dst := input.RawData(), kernel.RawData(), out.RawData()
	var i, j, m, n, rowBase int
	var sum float32
	for i = 0; i < outR; i++ {
		for j = 0; j < outC; j++ {
			sum = 0
			for m = 0; m < kr; m++ {
				rowBase = (i+m)*ic + j
				for n = 0; n < kc; n++ {
					sum += src[rowBase+n] * k[m*kc+n]
				}
			}
			dst[i*outC+j] = sum
		}
	}

	return out, nil
}
