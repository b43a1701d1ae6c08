// SPDX-License-Identifier: MIT

package pipeline

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/glassocr/matrix"
)

// Result is the outcome of one Infer call. All matrices are owned by the
// caller.
type Result struct {
	Probabilities   *matrix.Dense // Classes×1, softmax output
	Logits          *matrix.Dense // Classes×1, dense-layer output before softmax
	Best            int           // arg-max of Probabilities, lowest index on ties
	FirstFeatureMap *matrix.Dense // filter 0 after bias and ReLU, before pooling
}

// Class pairs a class label with its probability.
type Class struct {
	Label       int
	Probability float32
}

// Ranked returns every class ordered by descending probability; equal
// probabilities keep ascending label order.
func (r *Result) Ranked() []Class {
	data := r.Probabilities.Data()
	out := make([]Class, len(data))
	for i, v := range data {
		out[i] = Class{Label: i, Probability: v}
	}
	slices.SortStableFunc(out, func(a, b Class) int {
		return cmp.Compare(b.Probability, a.Probability)
	})

	return out
}
