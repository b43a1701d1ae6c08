// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"
	"math"

	"github.com/katalvlaran/glassocr/matrix"
)

// Set holds a complete classifier parameter set. It is read-only after
// construction and safe to share between goroutines.
type Set struct {
	Kernels      []*matrix.Dense // N kernels, each K×K
	ConvBias     *matrix.Dense   // N×1
	DenseWeights *matrix.Dense   // Classes × FeatureLen
	DenseBias    *matrix.Dense   // Classes×1
}

// Filters returns the number of convolution filters.
func (s *Set) Filters() int { return len(s.Kernels) }

// Bias returns the scalar bias of filter k.
func (s *Set) Bias(k int) (float32, error) {
	v, err := s.ConvBias.At(k, 0)
	if err != nil {
		return 0, fmt.Errorf("Set.Bias(%d): %w", k, err)
	}

	return v, nil
}

// Check reports matrix.ErrDimensionMismatch (or ErrNilMatrix) when any
// matrix of s deviates from the shapes cfg.Files describes.
func (s *Set) Check(cfg Config) error {
	if len(s.Kernels) != cfg.Filters {
		return fmt.Errorf("Set.Check: %d kernels, want %d: %w",
			len(s.Kernels), cfg.Filters, matrix.ErrDimensionMismatch)
	}
	entries := s.entries()
	for i, f := range cfg.Files() {
		if err := matrix.ValidateShape(entries[i].m, f.Rows, f.Cols); err != nil {
			return fmt.Errorf("Set.Check: %s: %w", f.Name, err)
		}
	}

	return nil
}

// Zero returns a Set of the cfg geometry with every parameter zero.
func Zero(cfg Config) (*Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	files := cfg.Files()
	ms := make([]*matrix.Dense, len(files))
	for i, f := range files {
		m, err := matrix.NewZeros(f.Rows, f.Cols)
		if err != nil {
			return nil, fmt.Errorf("Zero: %s: %w", f.Name, err)
		}
		ms[i] = m
	}

	return assemble(ms, cfg.Filters), nil
}

// Random returns a Set of the cfg geometry filled from N(0, stddev²) with a
// fixed seed, for fixtures and benchmarks. stddev must be finite and > 0.
func Random(cfg Config, seed uint64, stddev float64) (*Set, error) {
	if !(stddev > 0) || math.IsInf(stddev, 0) {
		return nil, fmt.Errorf("Random: stddev %v: %w", stddev, ErrInvalidConfig)
	}
	s, err := Zero(cfg)
	if err != nil {
		return nil, err
	}
	for i, e := range s.entries() {
		e.m.SetRandom(matrix.WithSeed(seed+uint64(i)), matrix.WithStdDev(stddev))
	}

	return s, nil
}

// assemble builds a Set from matrices in load order.
func assemble(ms []*matrix.Dense, filters int) *Set {
	return &Set{
		Kernels:      ms[:filters:filters],
		ConvBias:     ms[filters],
		DenseWeights: ms[filters+1],
		DenseBias:    ms[filters+2],
	}
}
