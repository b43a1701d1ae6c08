// SPDX-License-Identifier: MIT

// Package canvas owns the mutable input image the classifier reads.
//
// A Canvas is a side×side grid of intensities in [0,1]. Writers paint with a
// small disk-shaped brush at normalized coordinates; readers take a Snapshot
// and hand it to the pipeline, so inference never observes a half-painted
// stroke. The package also converts ordinary image files into classifier
// input and renders matrices back to PNG for inspection.
package canvas
