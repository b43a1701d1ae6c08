// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/glassocr/matrix"
)

// Canvas is a square intensity grid guarded for one writer and many readers.
type Canvas struct {
	mu   sync.RWMutex
	img  *matrix.Dense
	side int

	// brush footprint as (row, col) offsets, computed once
	offsets   [][2]int
	intensity float32
}

// New returns a blank side×side canvas.
func New(side int, opts ...Option) (*Canvas, error) {
	if side < 1 {
		return nil, fmt.Errorf("New(%d): %w", side, ErrInvalidSide)
	}
	img, err := matrix.NewZeros(side, side)
	if err != nil {
		return nil, fmt.Errorf("New(%d): %w", side, err)
	}
	o := gatherOptions(opts...)

	return &Canvas{
		img:       img,
		side:      side,
		offsets:   brushOffsets(o.radius),
		intensity: o.intensity,
	}, nil
}

// brushOffsets lists every (i, j) with i²+j² <= r²+brushSlack.
func brushOffsets(r float64) [][2]int {
	limit := r*r + brushSlack
	span := int(math.Sqrt(limit))
	var out [][2]int
	for i := -span; i <= span; i++ {
		for j := -span; j <= span; j++ {
			if float64(i*i+j*j) <= limit {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// Side returns the canvas side.
func (c *Canvas) Side() int { return c.side }

// Reset clears every cell to zero.
func (c *Canvas) Reset() {
	c.mu.Lock()
	c.img.SetZero()
	c.mu.Unlock()
}

// Cell maps normalized coordinates (nx to the right, ny downward) to a
// (row, col) cell. Coordinates outside [0,1) yield ErrOutOfCanvas.
func (c *Canvas) Cell(nx, ny float64) (row, col int, err error) {
	if !(nx >= 0 && nx < 1 && ny >= 0 && ny < 1) {
		return 0, 0, fmt.Errorf("Cell(%g, %g): %w", nx, ny, ErrOutOfCanvas)
	}

	return int(ny * float64(c.side)), int(nx * float64(c.side)), nil
}

// PaintAt adds one brush dab centred on (nx, ny). Each covered cell grows by
// the brush intensity and saturates at 1; cells past the border are skipped.
// Points outside the canvas are ignored and PaintAt reports false.
func (c *Canvas) PaintAt(nx, ny float64) bool {
	row, col, err := c.Cell(nx, ny)
	if err != nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	data := c.img.RawData()
	for _, off := range c.offsets {
		r, cc := row+off[0], col+off[1]
		if r < 0 || r >= c.side || cc < 0 || cc >= c.side {
			continue
		}
		idx := r*c.side + cc
		data[idx] = min(1, data[idx]+c.intensity)
	}

	return true
}

// Stroke paints one dab at each point.
// It returns the number of points that landed on the canvas.
func (c *Canvas) Stroke(points ...[2]float64) int {
	n := 0
	for _, p := range points {
		if c.PaintAt(p[0], p[1]) {
			n++
		}
	}

	return n
}

// Snapshot returns an independent copy of the current image.
func (c *Canvas) Snapshot() *matrix.Dense {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.img.CloneDense()
}

// Replace overwrites the canvas with m, which must be side×side.
func (c *Canvas) Replace(m *matrix.Dense) error {
	if err := matrix.ValidateShape(m, c.side, c.side); err != nil {
		return fmt.Errorf("Replace: %w", err)
	}
	c.mu.Lock()
	copy(c.img.RawData(), m.RawData())
	c.mu.Unlock()

	return nil
}
