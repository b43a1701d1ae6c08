// Package cnn implements the forward-pass operators of a small convolutional
// classifier on top of matrix.Dense.
//
// Operators, in pipeline order:
//
//	Convolve  valid (unpadded, stride 1, unflipped) cross-correlation
//	BiasReLU  scalar bias added to a feature map, then max(0, x)
//	MaxPool   non-overlapping step×step windows, trailing rows/cols dropped
//	Concat    filter-major flattening of pooled maps into one column
//	Affine    W·x + b
//	Softmax   exp / Σexp, deliberately without max-subtraction
//
// ConvPoolStage and DenseSoftmaxStage bundle the operators the way the
// pipeline package runs them. Every operator returns a fresh matrix.
package cnn
