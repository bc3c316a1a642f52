package ilpsum

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/zeebo/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/histdb/ilpsum/conf"
)

func smallConfig() conf.Config {
	cfg := conf.Defaults()
	cfg.Elements = 10007
	cfg.Warmup = 1
	cfg.Iterations = 3
	cfg.Mode = "random"
	cfg.Seed = 3
	return cfg
}

func TestRun(t *testing.T) {
	t.Run("Random", func(t *testing.T) {
		rep, err := Run(smallConfig(), nil)
		assert.NoError(t, err)

		assert.Equal(t, rep.Elements, 10007)
		assert.Equal(t, rep.Bytes, uint64(4*10007))
		assert.Equal(t, len(rep.Rows), 3)
		assert.Equal(t, rep.Rows[0].Name, "naive")
		assert.Equal(t, rep.Rows[0].Lanes, 1)
		assert.Equal(t, rep.Rows[1].Lanes, 4)

		for _, row := range rep.Rows {
			assert.Equal(t, len(row.Result.Durations), 3)
			assert.That(t, !row.Disagrees)
			assert.That(t, row.RelErr < 1e-3)
			assert.That(t, row.GBps > 0)
		}
	})

	t.Run("Reproducible", func(t *testing.T) {
		a, err := Run(smallConfig(), nil)
		assert.NoError(t, err)
		b, err := Run(smallConfig(), nil)
		assert.NoError(t, err)

		assert.Equal(t, a.Digest, b.Digest)
		for i := range a.Rows {
			assert.Equal(t, a.Rows[i].Result.Sum, b.Rows[i].Result.Sum)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		cfg := smallConfig()
		cfg.Elements = 0

		rep, err := Run(cfg, nil)
		assert.NoError(t, err)
		for _, row := range rep.Rows {
			assert.Equal(t, row.Result.Sum, float32(0))
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, edit := range []func(*conf.Config){
			func(c *conf.Config) { c.Lanes = 0 },
			func(c *conf.Config) { c.Iterations = -1 },
			func(c *conf.Config) { c.Warmup = -1 },
			func(c *conf.Config) { c.Mode = "sawtooth" },
		} {
			core, logs := observer.New(zapcore.DebugLevel)
			cfg := smallConfig()
			edit(&cfg)

			rep, err := Run(cfg, zap.New(core))
			assert.That(t, errors.Is(err, conf.ErrInvalidConfiguration))
			assert.That(t, rep == nil)
			assert.Equal(t, logs.Len(), 0)
		}
	})

	t.Run("Disagreement", func(t *testing.T) {
		// 1<<24 absorbs every following 1 in a single chain but not in
		// four separate lanes.
		cfg := smallConfig()
		cfg.Mode = "constant"
		cfg.Value = 1
		cfg.Elements = 1<<24 + 1<<16
		cfg.Warmup = 0
		cfg.Iterations = 1

		core, logs := observer.New(zapcore.InfoLevel)
		rep, err := Run(cfg, zap.New(core))
		assert.NoError(t, err)

		assert.Equal(t, rep.Rows[0].Result.Sum, float32(1<<24))
		assert.Equal(t, rep.Rows[1].Result.Sum, float32(1<<24+1<<16))
		assert.That(t, !rep.Rows[0].Disagrees)
		assert.That(t, rep.Rows[1].Disagrees)
		assert.That(t, logs.FilterMessage("summers disagree beyond tolerance").Len() >= 1)
	})
}

func TestReport(t *testing.T) {
	t.Run("Table", func(t *testing.T) {
		rep, err := Run(smallConfig(), nil)
		assert.NoError(t, err)

		var buf bytes.Buffer
		n, err := rep.WriteTo(&buf)
		assert.NoError(t, err)
		assert.Equal(t, n, int64(buf.Len()))

		out := buf.String()
		for _, want := range []string{"variant", "GB/s", "naive", "prepped", "chunked", "mode random", "10007 float32"} {
			assert.That(t, strings.Contains(out, want))
		}
		assert.That(t, !strings.Contains(out, "differs from naive"))
	})

	t.Run("NoIterations", func(t *testing.T) {
		cfg := smallConfig()
		cfg.Iterations = 0

		rep, err := Run(cfg, nil)
		assert.NoError(t, err)

		var buf bytes.Buffer
		_, err = rep.WriteTo(&buf)
		assert.NoError(t, err)
		assert.That(t, strings.Contains(buf.String(), "-"))
	})
}

func TestSize(t *testing.T) {
	assert.Equal(t, size(0), "?")
	assert.Equal(t, size(48<<10), "48KiB")
	assert.Equal(t, size(2<<20), "2MiB")
	assert.Equal(t, size(1500), "1500B")
}
