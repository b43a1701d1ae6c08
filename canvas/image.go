// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/katalvlaran/glassocr/matrix"
)

// FromImage converts img into a side×side intensity matrix: grayscale,
// Lanczos resize, value/255. With invert set, dark strokes on a light
// background become bright, which is what the classifier expects.
func FromImage(img image.Image, side int, invert bool) (*matrix.Dense, error) {
	if side < 1 {
		return nil, fmt.Errorf("FromImage: side %d: %w", side, ErrInvalidSide)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("FromImage: %w", ErrEmptyImage)
	}
	g := imaging.Grayscale(img)
	if invert {
		g = imaging.Invert(g)
	}
	g = imaging.Resize(g, side, side, imaging.Lanczos)

	out, err := matrix.NewDense(side, side)
	if err != nil {
		return nil, fmt.Errorf("FromImage: %w", err)
	}
	dst := out.RawData()
	for y := 0; y < side; y++ {
		row := g.Pix[y*g.Stride:]
		for x := 0; x < side; x++ {
			dst[y*side+x] = float32(row[x*4]) / 255
		}
	}

	return out, nil
}

// Load opens an image file (any format imaging can decode) and converts it
// with FromImage.
func Load(path string, side int, invert bool) (*matrix.Dense, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load %q: %w", path, err)
	}

	return FromImage(img, side, invert)
}

// ToImage renders m as 8-bit grayscale, mapping min(m)→0 and max(m)→255.
// A constant matrix renders black.
func ToImage(m *matrix.Dense) (*image.Gray, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToImage: %w", err)
	}
	r, c := m.Shape()
	img := image.NewGray(image.Rect(0, 0, c, r))
	norm, err := matrix.NormalizeMinMax(m)
	if err != nil {
		return nil, fmt.Errorf("ToImage: %w", err)
	}
	levels, err := matrix.Scale(norm, 255)
	if err != nil {
		return nil, fmt.Errorf("ToImage: %w", err)
	}
	for i, v := range levels.RawData() {
		img.Pix[(i/c)*img.Stride+i%c] = uint8(v + 0.5)
	}

	return img, nil
}

// SaveImage writes m as an image to path, upscaled scale× with nearest
// neighbour so individual cells stay visible. The format follows the file
// extension.
func SaveImage(path string, m *matrix.Dense, scale int) error {
	img, err := ToImage(m)
	if err != nil {
		return fmt.Errorf("SaveImage: %w", err)
	}
	var out image.Image = img
	if scale > 1 {
		b := img.Bounds()
		out = imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
	}
	if err := imaging.Save(out, path); err != nil {
		return fmt.Errorf("SaveImage %q: %w", path, err)
	}

	return nil
}
