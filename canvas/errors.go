// SPDX-License-Identifier: MIT

package canvas

import "errors"

var (
	// ErrOutOfCanvas indicates a normalized coordinate outside [0,1).
	ErrOutOfCanvas = errors.New("canvas: point outside canvas")

	// ErrInvalidSide indicates a canvas or image side < 1.
	ErrInvalidSide = errors.New("canvas: side must be >= 1")

	// ErrEmptyImage indicates a source image with no pixels.
	ErrEmptyImage = errors.New("canvas: empty image")
)
