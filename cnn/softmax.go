// SPDX-License-Identifier: MIT

package cnn

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/katalvlaran/glassocr/matrix"
)

// Softmax exponentiates every logit and normalises by the total:
// p_i = exp(l_i) / Σ_j exp(l_j). The output has the shape of logits.
//
// The maximum logit is NOT subtracted first. Logits above ~88 overflow
// float32 exp to +Inf and the affected entries become NaN (Inf/Inf).
// For finite, moderate logits the result sums to 1 within float32 rounding.
func Softmax(logits *matrix.Dense) (*matrix.Dense, error) {
	e, err := matrix.Apply(logits, math32.Exp)
	if err != nil {
		return nil, fmt.Errorf("Softmax: %w", err)
	}

	p, err := matrix.NormalizeSum(e)
	if err != nil {
		return nil, fmt.Errorf("Softmax: %w", err)
	}

	return p, nil
}

// ArgMax returns the index of the largest probability; ties resolve to the
// lowest index.
func ArgMax(probs *matrix.Dense) (int, error) {
	idx, err := matrix.ArgMax(probs)
	if err != nil {
		return 0, fmt.Errorf("cnn.ArgMax: %w", err)
	}

	return idx, nil
}
