// SPDX-License-Identifier: MIT

package pipeline

import "errors"

// ErrConfig indicates a weight set whose shapes do not fit together or do
// not fit the configured input side. It wraps the underlying matrix or
// weights sentinel.
var ErrConfig = errors.New("pipeline: weight set does not match configuration")
