package ilpsum

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/histdb/ilpsum/bench"
	"github.com/histdb/ilpsum/conf"
	"github.com/histdb/ilpsum/sample"
	"github.com/histdb/ilpsum/summer"
)

// Row is the outcome of timing one variant.
type Row struct {
	Name   string
	Lanes  int
	Result *bench.Result

	Best   time.Duration
	Median time.Duration

	// GBps is decimal gigabytes per second at the best duration.
	GBps float64

	// Speedup is the naive best duration over this variant's best duration.
	Speedup float64

	// RelErr is the distance from the float64 reference, scaled by the sum
	// of absolute values of the samples.
	RelErr float64

	// Disagrees is set when the sum differs from the naive sum by more than
	// the configured tolerance.
	Disagrees bool
}

type Report struct {
	Config    conf.Config
	Mode      sample.Mode
	Elements  int
	Bytes     uint64
	Digest    uint64
	Reference float64
	Host      Host
	Rows      []Row
}

// Run times every standard variant against one generated buffer. An invalid
// configuration is reported before any data is generated or timed.
func Run(cfg conf.Config, log *zap.Logger) (*Report, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, err := sample.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	variants, err := summer.Variants(cfg.Lanes)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	buf, err := sample.Generate(cfg.Elements, sample.Options{
		Mode:  mode,
		Value: cfg.Value,
		Seed:  cfg.Seed,
	})
	if err != nil {
		return nil, err
	}
	log.Info("generated samples",
		zap.Int("elements", buf.Len()),
		zap.Uint64("bytes", buf.Bytes()),
		zap.Stringer("mode", mode),
		zap.Uint64("digest", buf.Digest()),
		zap.Duration("took", time.Since(start)))

	data := buf.View()
	ref, mag := reference(data)

	rep := &Report{
		Config:    cfg,
		Mode:      mode,
		Elements:  buf.Len(),
		Bytes:     buf.Bytes(),
		Digest:    buf.Digest(),
		Reference: ref,
		Host:      DetectHost(),
	}

	h := bench.New(log)
	for _, s := range variants {
		res, err := h.Run(s, data, cfg.Warmup, cfg.Iterations)
		if err != nil {
			return nil, err
		}
		rep.Rows = append(rep.Rows, newRow(s, res, buf.Bytes(), ref, mag))
	}

	naive := rep.Rows[0]
	for i := range rep.Rows {
		row := &rep.Rows[i]
		if naive.Best > 0 && row.Best > 0 {
			row.Speedup = float64(naive.Best) / float64(row.Best)
		}
		row.Disagrees = relErr(float64(row.Result.Sum), float64(naive.Result.Sum), mag) > cfg.Tolerance

		log.Info("measured",
			zap.String("summer", row.Name),
			zap.Int("lanes", row.Lanes),
			zap.Duration("best", row.Best),
			zap.Float64("gbps", row.GBps),
			zap.Float32("sum", row.Result.Sum))

		if row.Disagrees {
			log.Warn("summers disagree beyond tolerance",
				zap.String("summer", row.Name),
				zap.Float32("sum", row.Result.Sum),
				zap.Float32("naive", naive.Result.Sum),
				zap.Float64("tolerance", cfg.Tolerance))
		}
	}

	return rep, nil
}

type laned interface{ Lanes() int }

func newRow(s summer.T, res *bench.Result, bytes uint64, ref, mag float64) Row {
	row := Row{
		Name:   s.Name(),
		Lanes:  1,
		Result: res,
		GBps:   res.Throughput(bytes) / 1e9,
	}
	if l, ok := s.(laned); ok {
		row.Lanes = l.Lanes()
	}
	row.Best, _ = res.Best()
	row.Median, _ = res.Median()
	if len(res.Durations) > 0 {
		row.RelErr = relErr(float64(res.Sum), ref, mag)
	}
	return row
}

// reference returns the float64 sum of data and the sum of its absolute
// values.
func reference(data []float32) (sum, mag float64) {
	for _, v := range data {
		sum += float64(v)
		mag += math.Abs(float64(v))
	}
	return sum, mag
}

func relErr(got, want, mag float64) float64 {
	diff := math.Abs(got - want)
	if mag == 0 {
		return diff
	}
	return diff / mag
}
