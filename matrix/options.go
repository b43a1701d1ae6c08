// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for random initialisation.
// This file defines:
//   - RandomOption / randomOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherRandomOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior on request: a fixed seed reproduces the same fill.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math"
	"math/rand/v2"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMean is the mean of the normal distribution used by SetRandom.
	DefaultMean = 0.0

	// DefaultStdDev is the standard deviation used by SetRandom.
	DefaultStdDev = 1.0
)

const panicStdDevInvalid = "matrix: WithStdDev: sigma must be finite and > 0"

// RandomOption mutates random-fill options.
type RandomOption func(*randomOptions)

type randomOptions struct {
	mean   float64
	stdDev float64
	src    rand.Source // nil ⇒ global source
}

// WithSeed makes SetRandom deterministic by drawing from a PCG source seeded with seed.
func WithSeed(seed uint64) RandomOption {
	return func(o *randomOptions) { o.src = rand.NewPCG(seed, seed) }
}

// WithSource draws samples from src.
func WithSource(src rand.Source) RandomOption {
	return func(o *randomOptions) { o.src = src }
}

// WithMean shifts the sampling distribution.
func WithMean(mu float64) RandomOption {
	return func(o *randomOptions) { o.mean = mu }
}

// WithStdDev sets the sampling standard deviation; panics on sigma<=0 or non-finite.
func WithStdDev(sigma float64) RandomOption {
	if sigma <= 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic(panicStdDevInvalid)
	}

	return func(o *randomOptions) { o.stdDev = sigma }
}

// gatherRandomOptions resolves defaults and applies setters in order.
func gatherRandomOptions(opts ...RandomOption) randomOptions {
	o := randomOptions{mean: DefaultMean, stdDev: DefaultStdDev}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
