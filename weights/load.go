// SPDX-License-Identifier: MIT

package weights

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/glassocr/matrix"
)

// Load reads a complete Set for cfg from dir.
//
// Files are read in cfg.Files order. The first failure aborts the load and
// the returned error names the file; it matches matrix.ErrLoad via
// errors.Is (and the underlying *os.PathError for missing files). logger may
// be nil.
func Load(dir string, cfg Config, logger *zap.Logger) (*Set, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "weights: load")
	}

	files := cfg.Files()
	ms := make([]*matrix.Dense, len(files))
	for i, f := range files {
		m, err := matrix.NewDense(f.Rows, f.Cols)
		if err != nil {
			return nil, errors.Wrapf(err, "weights: %s", f.Name)
		}
		size, err := m.Load(filepath.Join(dir, f.Name))
		if err != nil {
			logger.Error("weight file failed", zap.String("file", f.Name), zap.Error(err))

			return nil, errors.Wrapf(err, "weights: loading %s", f.Name)
		}
		logger.Debug("weight file loaded",
			zap.String("file", f.Name),
			zap.Stringer("shape", size),
			zap.Int("tokens", size.Len()),
		)
		ms[i] = m
	}
	logger.Info("weights loaded",
		zap.String("dir", dir),
		zap.Int("filters", cfg.Filters),
		zap.Int("feature_len", cfg.FeatureLen()),
	)

	return assemble(ms, cfg.Filters), nil
}

// Save writes s into dir (created if missing) using the Load layout.
// Kernel files are numbered by position in s.Kernels.
func Save(dir string, s *Set) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "weights: save %s", dir)
	}
	for _, e := range s.entries() {
		if err := matrix.ValidateNotNil(e.m); err != nil {
			return errors.Wrapf(err, "weights: save %s", e.name)
		}
		if err := e.m.Save(filepath.Join(dir, e.name)); err != nil {
			return errors.Wrapf(err, "weights: save %s", e.name)
		}
	}

	return nil
}

type entry struct {
	name string
	m    *matrix.Dense
}

// entries lists the matrices of s in load order with their file names.
func (s *Set) entries() []entry {
	out := make([]entry, 0, len(s.Kernels)+3)
	for k, kern := range s.Kernels {
		out = append(out, entry{KernelFile(k), kern})
	}

	return append(out,
		entry{ConvBiasFile, s.ConvBias},
		entry{DenseWeightsFile, s.DenseWeights},
		entry{DenseBiasFile, s.DenseBias},
	)
}
