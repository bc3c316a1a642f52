package sample

import (
	"unsafe"

	"github.com/zeebo/mwc"
	"github.com/zeebo/xxh3"

	"github.com/histdb/ilpsum/conf"
	"github.com/histdb/ilpsum/sizeof"
)

// RampPeriod bounds ramp values so that every element is an exact small
// integer.
const RampPeriod = 1024

// seedMix is xored into the seed to form the second mwc state word.
const seedMix = 0x9e3779b97f4a7c15

type Options struct {
	Mode  Mode
	Value float32
	Seed  uint64
}

// Buffer is an immutable sequence of samples. Callers of View must not write
// through the returned slice.
type Buffer struct {
	data   []float32
	opts   Options
	digest uint64
}

func Generate(n int, opts Options) (*Buffer, error) {
	if n < 0 {
		return nil, conf.Invalid("elements", "must be >= 0, got %d", n)
	}

	data := make([]float32, n)
	switch opts.Mode {
	case Ramp:
		for i := range data {
			data[i] = float32(i % RampPeriod)
		}

	case Constant:
		for i := range data {
			data[i] = opts.Value
		}

	case Random:
		rng := mwc.New(opts.Seed, opts.Seed^seedMix)
		for i := range data {
			data[i] = rng.Float32()
		}

	default:
		return nil, conf.Invalid("mode", "unknown mode %d", opts.Mode)
	}

	return &Buffer{
		data:   data,
		opts:   opts,
		digest: Digest(data),
	}, nil
}

// Of wraps data as a Buffer. The caller gives up the right to modify data.
func Of(data []float32) *Buffer {
	return &Buffer{data: data, digest: Digest(data)}
}

func (b *Buffer) View() []float32 { return b.data }
func (b *Buffer) Len() int        { return len(b.data) }
func (b *Buffer) Bytes() uint64   { return sizeof.Data(b.data) }
func (b *Buffer) Digest() uint64  { return b.digest }
func (b *Buffer) Mode() Mode      { return b.opts.Mode }
func (b *Buffer) Seed() uint64    { return b.opts.Seed }

// Digest is the xxh3 hash of the in-memory bytes of data.
func Digest(data []float32) uint64 {
	if len(data) == 0 {
		return xxh3.Hash(nil)
	}
	return xxh3.Hash(unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), sizeof.Data(data)))
}
