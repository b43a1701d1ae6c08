// SPDX-License-Identifier: MIT

// Package pipeline runs the full classifier over one input image.
//
// A Pipeline is built once from a weights.Set and is then stateless: every
// Infer call is a pure function of (image, weights). For each filter it
// runs cnn.ConvPoolStage, concatenates the pooled maps filter-major and
// finishes with cnn.DenseSoftmaxStage.
//
// Filters are independent; WithParallelism fans them out over an errgroup
// while keeping the output identical to the sequential pass.
package pipeline
