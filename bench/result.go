package bench

import (
	"math"
	"slices"
	"time"
)

type Result struct {
	Name      string
	Durations []time.Duration

	// Sum is the value returned by the last measured call.
	Sum float32

	// Checksum accumulates the value returned by every call, warmup included.
	Checksum float64
}

// Best is the fastest measured call. Scheduling noise only ever adds time, so
// the minimum is the most faithful estimate.
func (r *Result) Best() (time.Duration, bool) {
	if len(r.Durations) == 0 {
		return 0, false
	}
	return slices.Min(r.Durations), true
}

func (r *Result) Median() (time.Duration, bool) { return r.Quantile(0.5) }

// Quantile returns the nearest-rank q-quantile of the measured durations.
func (r *Result) Quantile(q float64) (time.Duration, bool) {
	if len(r.Durations) == 0 || math.IsNaN(q) {
		return 0, false
	}

	sorted := slices.Clone(r.Durations)
	slices.Sort(sorted)

	idx := int(math.Ceil(q*float64(len(sorted)))) - 1
	idx = max(0, min(idx, len(sorted)-1))
	return sorted[idx], true
}

func (r *Result) Mean() (time.Duration, bool) {
	if len(r.Durations) == 0 {
		return 0, false
	}
	var total time.Duration
	for _, d := range r.Durations {
		total += d
	}
	return total / time.Duration(len(r.Durations)), true
}

// Throughput is bytes per second at the best duration. It is zero when
// nothing was measured and +Inf when the best call was faster than the
// clock resolution.
func (r *Result) Throughput(bytes uint64) float64 {
	best, ok := r.Best()
	if !ok {
		return 0
	} else if best <= 0 {
		return math.Inf(1)
	}
	return float64(bytes) / best.Seconds()
}
