package summer

import "github.com/histdb/ilpsum/conf"

// DefaultLanes is tuned for a core that can retire several independent
// float adds per cycle with a latency of about four cycles.
const DefaultLanes = conf.DefaultLanes

// T reduces a read-only sequence of samples to a scalar. Implementations
// must not retain or modify data.
type T interface {
	Name() string
	Sum(data []float32) float32
}

// Func adapts a plain function to T.
type Func struct {
	Label string
	Fn    func([]float32) float32
}

func (f Func) Name() string               { return f.Label }
func (f Func) Sum(data []float32) float32 { return f.Fn(data) }

type Naive struct{}

func (Naive) Name() string               { return "naive" }
func (Naive) Sum(data []float32) float32 { return sumNaive(data) }

// Prepped sums with a fixed number of independent accumulators. The zero
// value uses DefaultLanes.
type Prepped struct{ lanes int }

func NewPrepped(lanes int) (Prepped, error) {
	if lanes < 1 {
		return Prepped{}, conf.Invalid("lanes", "must be >= 1, got %d", lanes)
	}
	return Prepped{lanes: lanes}, nil
}

func (p Prepped) Name() string { return "prepped" }
func (p Prepped) Lanes() int   { return orDefault(p.lanes) }

func (p Prepped) Sum(data []float32) float32 {
	if lanes := p.Lanes(); lanes != 4 {
		return sumPrepped(data, lanes)
	}
	return sumPrepped4(data)
}

// Chunked folds complete groups into lanes like Prepped but totals the
// remainder on its own before adding it to the lane total. The zero value
// uses DefaultLanes.
type Chunked struct{ lanes int }

func NewChunked(lanes int) (Chunked, error) {
	if lanes < 1 {
		return Chunked{}, conf.Invalid("lanes", "must be >= 1, got %d", lanes)
	}
	return Chunked{lanes: lanes}, nil
}

func (c Chunked) Name() string               { return "chunked" }
func (c Chunked) Lanes() int                 { return orDefault(c.lanes) }
func (c Chunked) Sum(data []float32) float32 { return sumChunked(data, c.Lanes()) }

func orDefault(lanes int) int {
	if lanes < 1 {
		return DefaultLanes
	}
	return lanes
}

// Variants returns the standard comparison set. The naive summer is always
// first.
func Variants(lanes int) ([]T, error) {
	p, err := NewPrepped(lanes)
	if err != nil {
		return nil, err
	}
	c, err := NewChunked(lanes)
	if err != nil {
		return nil, err
	}
	return []T{Naive{}, p, c}, nil
}
