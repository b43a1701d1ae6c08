// SPDX-License-Identifier: MIT

package cnn

import "errors"

// Sentinel errors for forward-pass operators. Shape problems between matrices
// are reported with matrix.ErrDimensionMismatch instead.
var (
	// ErrInvalidKernelSize indicates a kernel with an even row or column count.
	ErrInvalidKernelSize = errors.New("cnn: kernel rows and cols must be odd")

	// ErrInvalidStep indicates a pooling step smaller than 1.
	ErrInvalidStep = errors.New("cnn: pooling step must be >= 1")

	// ErrNoFeatureMaps indicates Concat was called without any feature map.
	ErrNoFeatureMaps = errors.New("cnn: no feature maps to concatenate")
)
