// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/stat/distuv"

// SetRandom overwrites every element in place with an independent sample
// from a normal distribution (mean 0, variance 1 unless overridden).
// It exists for non-inference initialisation paths; samples are always finite.
//
// Complexity: O(r*c).
func (m *Dense) SetRandom(opts ...RandomOption) {
	o := gatherRandomOptions(opts...)
	dist := distuv.Normal{Mu: o.mean, Sigma: o.stdDev, Src: o.src}
	for i := range m.data {
		m.data[i] = float32(dist.Rand())
	}
}
