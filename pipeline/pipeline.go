// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/glassocr/cnn"
	"github.com/katalvlaran/glassocr/matrix"
	"github.com/katalvlaran/glassocr/weights"
)

// Pipeline is an immutable classifier. It is safe for concurrent use.
type Pipeline struct {
	cfg    weights.Config
	conv   []cnn.ConvPoolStage
	dense  cnn.DenseSoftmaxStage
	opts   Options
	logger *zap.Logger
}

// New validates set against the configured geometry and builds a Pipeline.
//
// The geometry is derived from the set itself (filter count, kernel side,
// class count) plus the input side and pool step options. Any shape that
// does not line up yields an error matching ErrConfig and the underlying
// sentinel (matrix.ErrDimensionMismatch, matrix.ErrNilMatrix or
// weights.ErrInvalidConfig).
func New(set *weights.Set, opts ...Option) (*Pipeline, error) {
	o := gatherOptions(opts...)
	cfg, err := geometry(set, o)
	if err != nil {
		return nil, err
	}

	conv := make([]cnn.ConvPoolStage, cfg.Filters)
	for k := range conv {
		bias, err := set.Bias(k)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		conv[k] = cnn.ConvPoolStage{Kernel: set.Kernels[k], Bias: bias, Step: o.poolStep}
	}

	return &Pipeline{
		cfg:    cfg,
		conv:   conv,
		dense:  cnn.DenseSoftmaxStage{Weights: set.DenseWeights, Bias: set.DenseBias},
		opts:   o,
		logger: o.logger,
	}, nil
}

// geometry infers the Config described by set and checks every shape.
func geometry(set *weights.Set, o Options) (weights.Config, error) {
	if set == nil || len(set.Kernels) == 0 {
		return weights.Config{}, fmt.Errorf("%w: no kernels: %w", ErrConfig, cnn.ErrNoFeatureMaps)
	}
	if err := matrix.ValidateNotNil(set.Kernels[0]); err != nil {
		return weights.Config{}, fmt.Errorf("%w: kernel 0: %w", ErrConfig, err)
	}
	if err := matrix.ValidateNotNil(set.DenseBias); err != nil {
		return weights.Config{}, fmt.Errorf("%w: dense bias: %w", ErrConfig, err)
	}

	cfg := weights.Config{
		Filters:    len(set.Kernels),
		KernelSize: set.Kernels[0].Rows(),
		InputSide:  o.inputSide,
		PoolStep:   o.poolStep,
		Classes:    set.DenseBias.Rows(),
	}
	if err := cfg.Validate(); err != nil {
		return weights.Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := set.Check(cfg); err != nil {
		return weights.Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return cfg, nil
}

// Config returns the geometry the pipeline was validated against.
func (p *Pipeline) Config() weights.Config { return p.cfg }

// Infer classifies image, which must be InputSide×InputSide. image is only
// read; callers that mutate it concurrently must pass a snapshot.
//
// ctx is checked before each filter; a cancelled context returns ctx.Err().
func (p *Pipeline) Infer(ctx context.Context, image *matrix.Dense) (*Result, error) {
	if err := matrix.ValidateShape(image, p.cfg.InputSide, p.cfg.InputSide); err != nil {
		return nil, fmt.Errorf("Infer: image: %w", err)
	}
	start := time.Now()

	pooled := make([]*matrix.Dense, len(p.conv))
	var first *matrix.Dense

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.parallelism)
	for k := range p.conv {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := p.conv[k].Forward(image)
			if err != nil {
				return fmt.Errorf("filter %d: %w", k, err)
			}
			pooled[k] = out.Pooled
			if k == 0 {
				first = out.FeatureMap
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Infer: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Infer: %w", err)
	}

	logits, probs, err := p.dense.ForwardMaps(pooled)
	if err != nil {
		return nil, fmt.Errorf("Infer: %w", err)
	}
	best, err := cnn.ArgMax(probs)
	if err != nil {
		return nil, fmt.Errorf("Infer: %w", err)
	}

	p.logger.Debug("inference done",
		zap.Int("best", best),
		zap.Int("filters", len(p.conv)),
		zap.Int("parallelism", p.opts.parallelism),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Result{
		Probabilities:   probs,
		Logits:          logits,
		Best:            best,
		FirstFeatureMap: first,
	}, nil
}
