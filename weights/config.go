// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"

	"github.com/katalvlaran/glassocr/cnn"
)

// Default geometry of the classifier.
const (
	DefaultFilters    = 8
	DefaultKernelSize = 3
	DefaultInputSide  = 28
	DefaultClasses    = 10
)

// File names inside a weight directory.
const (
	kernelFilePattern = "conv_k%d.txt"
	ConvBiasFile      = "conv_bias.txt"
	DenseWeightsFile  = "dense_weights.txt"
	DenseBiasFile     = "dense_bias.txt"
)

// Config describes the classifier geometry a weight directory must match.
type Config struct {
	Filters    int // number of convolution filters (N)
	KernelSize int // kernel side (K), odd
	InputSide  int // input image side
	PoolStep   int // max-pool window side
	Classes    int // output classes
}

// DefaultConfig returns the 8-filter, 3×3, 28×28, 2×2-pool, 10-class geometry.
func DefaultConfig() Config {
	return Config{
		Filters:    DefaultFilters,
		KernelSize: DefaultKernelSize,
		InputSide:  DefaultInputSide,
		PoolStep:   cnn.DefaultPoolStep,
		Classes:    DefaultClasses,
	}
}

// Validate reports ErrInvalidConfig for geometry no classifier can have.
func (c Config) Validate() error {
	switch {
	case c.Filters < 1:
		return fmt.Errorf("filters=%d: %w", c.Filters, ErrInvalidConfig)
	case c.KernelSize < 1 || c.KernelSize%2 == 0:
		return fmt.Errorf("kernel size=%d: %w", c.KernelSize, ErrInvalidConfig)
	case c.InputSide < c.KernelSize:
		return fmt.Errorf("input side=%d < kernel size=%d: %w", c.InputSide, c.KernelSize, ErrInvalidConfig)
	case c.PoolStep < 1:
		return fmt.Errorf("pool step=%d: %w", c.PoolStep, ErrInvalidConfig)
	case c.Classes < 1:
		return fmt.Errorf("classes=%d: %w", c.Classes, ErrInvalidConfig)
	case c.PooledSide() == 0:
		return fmt.Errorf("pool step=%d leaves no pooled cells: %w", c.PoolStep, ErrInvalidConfig)
	}

	return nil
}

// FeatureSide is the side of a valid-convolution feature map.
func (c Config) FeatureSide() int { return c.InputSide - c.KernelSize + 1 }

// PooledSide is the side of a pooled feature map.
func (c Config) PooledSide() int { return cnn.PooledSide(c.FeatureSide(), c.PoolStep) }

// FeatureLen is the length of the flattened vector fed to the dense layer.
func (c Config) FeatureLen() int {
	p := c.PooledSide()

	return p * p * c.Filters
}

// File is one entry of a weight directory.
type File struct {
	Name string
	Rows int
	Cols int
}

// Tokens is the number of values the file must contain.
func (f File) Tokens() int { return f.Rows * f.Cols }

// KernelFile returns the file name of kernel k.
func KernelFile(k int) string { return fmt.Sprintf(kernelFilePattern, k) }

// Files lists the weight files in load order with their expected shapes.
func (c Config) Files() []File {
	files := make([]File, 0, c.Filters+3)
	for k := 0; k < c.Filters; k++ {
		files = append(files, File{Name: KernelFile(k), Rows: c.KernelSize, Cols: c.KernelSize})
	}

	return append(files,
		File{Name: ConvBiasFile, Rows: c.Filters, Cols: 1},
		File{Name: DenseWeightsFile, Rows: c.Classes, Cols: c.FeatureLen()},
		File{Name: DenseBiasFile, Rows: c.Classes, Cols: 1},
	)
}
