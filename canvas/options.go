// SPDX-License-Identifier: MIT

package canvas

import "math"

// Brush defaults.
const (
	DefaultBrushRadius = 1.8
	DefaultIntensity   = 0.5

	// brushSlack widens the disk test to i²+j² <= r²+brushSlack.
	brushSlack = 0.5
)

const (
	panicRadiusInvalid    = "canvas: WithBrushRadius: radius must be finite and >= 0"
	panicIntensityInvalid = "canvas: WithIntensity: intensity must be in (0,1]"
)

// Option configures a Canvas.
type Option func(*options)

type options struct {
	radius    float64
	intensity float32
}

// WithBrushRadius sets the brush radius in cells.
func WithBrushRadius(r float64) Option {
	if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		panic(panicRadiusInvalid)
	}

	return func(o *options) { o.radius = r }
}

// WithIntensity sets how much one dab adds to each covered cell.
func WithIntensity(v float32) Option {
	if !(v > 0 && v <= 1) {
		panic(panicIntensityInvalid)
	}

	return func(o *options) { o.intensity = v }
}

func gatherOptions(opts ...Option) options {
	o := options{radius: DefaultBrushRadius, intensity: DefaultIntensity}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
