// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/glassocr/pipeline"
	"github.com/katalvlaran/glassocr/weights"
)

const (
	// Global flags.
	flagWeights  = "weights"
	flagFilters  = "filters"
	flagParallel = "parallel"
	flagDebug    = "debug"
	flagLogFile  = "log-file"

	// Command flags.
	flagImage      = "image"
	flagInvert     = "invert"
	flagStroke     = "stroke"
	flagFeatureMap = "feature-map"
	flagScale      = "scale"
)

// session holds what every command needs once global flags are parsed.
type session struct {
	out      io.Writer
	logger   *zap.Logger
	closeLog func() error
}

func newApp(out, errOut io.Writer) *cli.App {
	s := &session{out: out, logger: zap.NewNop(), closeLog: func() error { return nil }}

	return &cli.App{
		Name:      "glassocr",
		Usage:     "classify handwritten digits with a single-layer CNN",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagWeights,
				Usage:   "directory holding conv_k*.txt, conv_bias.txt, dense_weights.txt, dense_bias.txt",
				Value:   ".",
				EnvVars: []string{"GLASSOCR_WEIGHTS"},
			},
			&cli.IntFlag{
				Name:    flagFilters,
				Usage:   "number of convolution filters the weights were trained with",
				Value:   weights.DefaultFilters,
				EnvVars: []string{"GLASSOCR_FILTERS"},
			},
			&cli.IntFlag{
				Name:  flagParallel,
				Usage: "filters evaluated concurrently",
				Value: pipeline.DefaultParallelism,
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:  flagLogFile,
				Usage: "also write JSON logs to this file (rotated)",
			},
		},
		Before: func(c *cli.Context) error {
			s.logger, s.closeLog = newLogger(errOut, c.Bool(flagDebug), c.String(flagLogFile))

			return nil
		},
		After: func(c *cli.Context) error {
			return s.closeLog()
		},
		Commands: []*cli.Command{
			{
				Name:      "infer",
				Usage:     "classify an image file or a set of brush strokes",
				UsageText: "glassocr infer (--image PATH [--invert] | --stroke X:Y[,X:Y...]) [--feature-map OUT.png]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagImage, Usage: "input image (any format imaging decodes)"},
					&cli.BoolFlag{Name: flagInvert, Usage: "treat dark strokes on a light background as ink"},
					&cli.StringSliceFlag{Name: flagStroke, Usage: "normalized brush points X:Y in [0,1), comma-separated or repeated"},
					&cli.StringFlag{Name: flagFeatureMap, Usage: "write the first feature map to this image file"},
					&cli.IntFlag{Name: flagScale, Usage: "feature map upscale factor", Value: defaultFeatureMapScale},
				},
				Action: s.inferAction,
			},
			{
				Name:  "watch",
				Usage: "re-run inference whenever an image file changes",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagImage, Usage: "image file to watch", Required: true},
					&cli.BoolFlag{Name: flagInvert, Usage: "treat dark strokes on a light background as ink"},
				},
				Action: s.watchAction,
			},
			{
				Name:   "shapes",
				Usage:  "print the expected weight files and their shapes",
				Action: s.shapesAction,
			},
		},
	}
}

// config builds the classifier geometry from global flags.
func config(c *cli.Context) weights.Config {
	cfg := weights.DefaultConfig()
	cfg.Filters = c.Int(flagFilters)

	return cfg
}

// buildPipeline loads weights and validates them. Any failure here is fatal
// for the command.
func (s *session) buildPipeline(c *cli.Context) (*pipeline.Pipeline, error) {
	cfg := config(c)
	set, err := weights.Load(c.String(flagWeights), cfg, s.logger)
	if err != nil {
		return nil, err
	}
	parallel := c.Int(flagParallel)
	if parallel < 1 {
		return nil, errors.Errorf("--%s must be >= 1, got %d", flagParallel, parallel)
	}
	p, err := pipeline.New(set,
		pipeline.WithInputSide(cfg.InputSide),
		pipeline.WithParallelism(parallel),
		pipeline.WithLogger(s.logger),
	)
	if err != nil {
		return nil, errors.Wrap(err, "configuration error")
	}

	return p, nil
}

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
