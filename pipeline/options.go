// SPDX-License-Identifier: MIT

package pipeline

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/glassocr/cnn"
	"github.com/katalvlaran/glassocr/weights"
)

// Defaults.
const (
	DefaultParallelism = 1
	DefaultInputSide   = weights.DefaultInputSide
	DefaultPoolStep    = cnn.DefaultPoolStep
)

const (
	panicParallelismInvalid = "pipeline: WithParallelism: n must be >= 1"
	panicInputSideInvalid   = "pipeline: WithInputSide: side must be >= 1"
	panicPoolStepInvalid    = "pipeline: WithPoolStep: step must be >= 1"
)

// Option configures a Pipeline. Constructors panic on nonsensical values.
type Option func(*Options)

// Options is the resolved configuration of a Pipeline.
type Options struct {
	parallelism int
	inputSide   int
	poolStep    int
	logger      *zap.Logger
}

// WithParallelism runs at most n filters concurrently. n=1 is sequential.
func WithParallelism(n int) Option {
	if n < 1 {
		panic(panicParallelismInvalid)
	}

	return func(o *Options) { o.parallelism = n }
}

// WithInputSide sets the expected input image side.
func WithInputSide(side int) Option {
	if side < 1 {
		panic(panicInputSideInvalid)
	}

	return func(o *Options) { o.inputSide = side }
}

// WithPoolStep sets the max-pool window side.
func WithPoolStep(step int) Option {
	if step < 1 {
		panic(panicPoolStepInvalid)
	}

	return func(o *Options) { o.poolStep = step }
}

// WithLogger sets the logger used for per-call debug output. nil keeps the
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		parallelism: DefaultParallelism,
		inputSide:   DefaultInputSide,
		poolStep:    DefaultPoolStep,
		logger:      zap.NewNop(),
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
