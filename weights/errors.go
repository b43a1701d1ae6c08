// SPDX-License-Identifier: MIT

package weights

import "errors"

// ErrInvalidConfig indicates a Config whose geometry cannot describe a
// classifier (non-positive counts, even kernel, kernel larger than input,
// or a pooled side of zero).
var ErrInvalidConfig = errors.New("weights: invalid config")
