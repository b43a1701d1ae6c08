// SPDX-License-Identifier: MIT

// Package weights loads and saves the pre-trained parameters of the
// glassocr classifier.
//
// A weight directory holds plain-text matrices (see matrix.Dense.Decode):
//
//	conv_k0.txt … conv_k{N-1}.txt   K×K convolution kernels
//	conv_bias.txt                   N×1 per-filter scalar biases
//	dense_weights.txt               Classes×(P·P·N) dense-layer weights
//	dense_bias.txt                  Classes×1 dense-layer biases
//
// where N is the filter count, K the kernel side and P the pooled side.
// Files are read in exactly that order and the first failure aborts the
// load; a partially populated Set is never returned.
package weights
