// SPDX-License-Identifier: MIT

package cnn

import (
	"fmt"

	"github.com/katalvlaran/glassocr/matrix"
)

// ConvPoolStage turns one input image into one pooled feature map using a
// single filter: Convolve → BiasReLU → MaxPool.
type ConvPoolStage struct {
	Kernel *matrix.Dense // odd-sided filter, read-only
	Bias   float32       // scalar added to every feature-map cell
	Step   int           // pooling window side; 0 means DefaultPoolStep
}

// ConvPoolOutput holds both the rectified feature map (before pooling) and
// the pooled map.
type ConvPoolOutput struct {
	FeatureMap *matrix.Dense
	Pooled     *matrix.Dense
}

// Forward runs the stage on input. The input is only read.
func (s ConvPoolStage) Forward(input *matrix.Dense) (ConvPoolOutput, error) {
	step := s.Step
	if step == 0 {
		step = DefaultPoolStep
	}

	fm, err := Convolve(input, s.Kernel)
	if err != nil {
		return ConvPoolOutput{}, fmt.Errorf("ConvPoolStage: %w", err)
	}
	fm, err = BiasReLU(fm, s.Bias)
	if err != nil {
		return ConvPoolOutput{}, fmt.Errorf("ConvPoolStage: %w", err)
	}
	pooled, err := MaxPool(fm, step)
	if err != nil {
		return ConvPoolOutput{}, fmt.Errorf("ConvPoolStage: %w", err)
	}

	return ConvPoolOutput{FeatureMap: fm, Pooled: pooled}, nil
}

// DenseSoftmaxStage maps a flattened feature vector to class probabilities:
// Affine(Weights, x, Bias) → Softmax.
type DenseSoftmaxStage struct {
	Weights *matrix.Dense // classes × features
	Bias    *matrix.Dense // classes × 1
}

// Forward returns (logits, probabilities) for the concatenated vector x.
func (s DenseSoftmaxStage) Forward(x *matrix.Dense) (logits, probs *matrix.Dense, err error) {
	logits, err = Affine(s.Weights, x, s.Bias)
	if err != nil {
		return nil, nil, fmt.Errorf("DenseSoftmaxStage: %w", err)
	}
	probs, err = Softmax(logits)
	if err != nil {
		return nil, nil, fmt.Errorf("DenseSoftmaxStage: %w", err)
	}

	return logits, probs, nil
}

// ForwardMaps concatenates pooled maps filter-major and runs Forward.
func (s DenseSoftmaxStage) ForwardMaps(pooled []*matrix.Dense) (logits, probs *matrix.Dense, err error) {
	x, err := Concat(pooled)
	if err != nil {
		return nil, nil, fmt.Errorf("DenseSoftmaxStage: %w", err)
	}

	return s.Forward(x)
}
