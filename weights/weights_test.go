// Package weights_test covers weight directory layout, loading order and
// failure reporting.
package weights_test

import (
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/glassocr/matrix"
	"github.com/katalvlaran/glassocr/weights"
)

func TestDefaultConfigGeometry(t *testing.T) {
	cfg := weights.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 26, cfg.FeatureSide())
	assert.Equal(t, 13, cfg.PooledSide())
	assert.Equal(t, 1352, cfg.FeatureLen())
}

func TestConfigFilesOrder(t *testing.T) {
	cfg := weights.DefaultConfig()
	files := cfg.Files()
	require.Len(t, files, 11)

	for k := 0; k < 8; k++ {
		assert.Equal(t, weights.File{Name: weights.KernelFile(k), Rows: 3, Cols: 3}, files[k])
	}
	assert.Equal(t, "conv_k7.txt", files[7].Name)
	assert.Equal(t, weights.File{Name: "conv_bias.txt", Rows: 8, Cols: 1}, files[8])
	assert.Equal(t, weights.File{Name: "dense_weights.txt", Rows: 10, Cols: 1352}, files[9])
	assert.Equal(t, weights.File{Name: "dense_bias.txt", Rows: 10, Cols: 1}, files[10])
	assert.Equal(t, 13520, files[9].Tokens())
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]func(*weights.Config){
		"no filters":    func(c *weights.Config) { c.Filters = 0 },
		"even kernel":   func(c *weights.Config) { c.KernelSize = 4 },
		"kernel > side": func(c *weights.Config) { c.InputSide = 2 },
		"zero step":     func(c *weights.Config) { c.PoolStep = 0 },
		"no classes":    func(c *weights.Config) { c.Classes = 0 },
		"empty pool":    func(c *weights.Config) { c.PoolStep = 27 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := weights.DefaultConfig()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), weights.ErrInvalidConfig)
		})
	}
}

func TestRandom_InvalidStdDev(t *testing.T) {
	cfg := weights.DefaultConfig()
	for _, sd := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		require.NotPanics(t, func() {
			_, err := weights.Random(cfg, 1, sd)
			require.ErrorIs(t, err, weights.ErrInvalidConfig, "stddev %v", sd)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := weights.DefaultConfig()
	want, err := weights.Random(cfg, 7, 0.5)
	require.NoError(t, err)
	require.NoError(t, weights.Save(dir, want))

	got, err := weights.Load(dir, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, got.Check(cfg))
	require.Equal(t, want.Filters(), got.Filters())
	for k := range want.Kernels {
		assert.True(t, want.Kernels[k].Equal(got.Kernels[k]), "kernel %d", k)
	}
	assert.True(t, want.ConvBias.Equal(got.ConvBias))
	assert.True(t, want.DenseWeights.Equal(got.DenseWeights))
	assert.True(t, want.DenseBias.Equal(got.DenseBias))

	b, err := got.Bias(3)
	require.NoError(t, err)
	wb, _ := want.ConvBias.At(3, 0)
	assert.Equal(t, wb, b)
}

// TestLoadOrderAndFirstFailure deletes a middle kernel and checks that the
// files before it were read in order, nothing after it was touched, and the
// error names the missing file.
func TestLoadOrderAndFirstFailure(t *testing.T) {
	dir := t.TempDir()
	cfg := weights.DefaultConfig()
	set, err := weights.Zero(cfg)
	require.NoError(t, err)
	require.NoError(t, weights.Save(dir, set))
	require.NoError(t, os.Remove(filepath.Join(dir, "conv_k3.txt")))

	core, logs := observer.New(zapcore.DebugLevel)
	got, err := weights.Load(dir, cfg, zap.New(core))
	require.Nil(t, got)
	require.Error(t, err)
	require.ErrorIs(t, err, matrix.ErrLoad)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), "conv_k3.txt")

	loaded := logs.FilterMessage("weight file loaded").All()
	require.Len(t, loaded, 3)
	for k, e := range loaded {
		assert.Equal(t, weights.KernelFile(k), e.ContextMap()["file"])
	}
	require.Equal(t, 1, logs.FilterMessage("weight file failed").Len())
	require.Equal(t, 0, logs.FilterMessage("weights loaded").Len())
}

func TestLoadShortFile(t *testing.T) {
	dir := t.TempDir()
	cfg := weights.DefaultConfig()
	set, err := weights.Zero(cfg)
	require.NoError(t, err)
	require.NoError(t, weights.Save(dir, set))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dense_bias.txt"), []byte("1 2 3\n"), 0o600))

	_, err = weights.Load(dir, cfg, nil)
	require.ErrorIs(t, err, matrix.ErrLoad)
	require.Contains(t, err.Error(), "dense_bias.txt")
	require.Contains(t, err.Error(), "got 3 of 10 tokens")
}

func TestLoadMalformedToken(t *testing.T) {
	dir := t.TempDir()
	cfg := weights.DefaultConfig()
	set, err := weights.Zero(cfg)
	require.NoError(t, err)
	require.NoError(t, weights.Save(dir, set))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "conv_bias.txt"), []byte("0 0 x 0 0 0 0 0"), 0o600))

	_, err = weights.Load(dir, cfg, nil)
	require.ErrorIs(t, err, matrix.ErrLoad)
	require.Contains(t, err.Error(), "conv_bias.txt")
}

// TestLoadMoreFiltersThanSaved asks for a ninth kernel that was never written.
func TestLoadMoreFiltersThanSaved(t *testing.T) {
	dir := t.TempDir()
	set, err := weights.Zero(weights.DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, weights.Save(dir, set))

	cfg := weights.DefaultConfig()
	cfg.Filters = 9
	_, err = weights.Load(dir, cfg, nil)
	require.ErrorIs(t, err, matrix.ErrLoad)
	require.Contains(t, err.Error(), "conv_k8.txt")
}

func TestLoadInvalidConfig(t *testing.T) {
	cfg := weights.DefaultConfig()
	cfg.KernelSize = 2
	_, err := weights.Load(t.TempDir(), cfg, nil)
	require.ErrorIs(t, err, weights.ErrInvalidConfig)
}

func TestCheckMismatch(t *testing.T) {
	cfg := weights.DefaultConfig()
	set, err := weights.Zero(cfg)
	require.NoError(t, err)

	other := cfg
	other.Classes = 9
	require.ErrorIs(t, set.Check(other), matrix.ErrDimensionMismatch)

	other = cfg
	other.Filters = 4
	require.ErrorIs(t, set.Check(other), matrix.ErrDimensionMismatch)
}
