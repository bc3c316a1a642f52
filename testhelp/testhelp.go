package testhelp

import (
	"math"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/mwc"
)

func Ones(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Floats returns n uniform values in [-1, 1) that are identical for
// identical seeds.
func Floats(n int, seed uint64) []float32 {
	rng := mwc.New(seed, 1)
	out := make([]float32, n)
	for i := range out {
		out[i] = 2*rng.Float32() - 1
	}
	return out
}

// Reference sums data in float64 so that its error is negligible next to any
// float32 summation order.
func Reference(data []float32) (total float64) {
	for _, v := range data {
		total += float64(v)
	}
	return total
}

// RelErr is |got-want| scaled by scale, or the absolute error when scale is
// zero.
func RelErr(got, want, scale float64) float64 {
	diff := math.Abs(got - want)
	if scale == 0 {
		return diff
	}
	return diff / math.Abs(scale)
}

// AssertClose fails if got and want differ by more than tol relative to the
// sum of absolute values of data, which bounds the magnitude of any partial
// sum regardless of association order.
func AssertClose(tb testing.TB, data []float32, got, want float32, tol float64) {
	tb.Helper()

	var mag float64
	for _, v := range data {
		mag += math.Abs(float64(v))
	}

	err := RelErr(float64(got), float64(want), mag)
	assert.That(tb, err <= tol)
}

// BitEqual compares the representation of a and b so that signed zeros and
// NaN payloads are distinguished.
func BitEqual(a, b float32) bool {
	return math.Float32bits(a) == math.Float32bits(b)
}
