package bench

import (
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/histdb/ilpsum/conf"
)

// Summer is the capability being timed.
type Summer interface {
	Name() string
	Sum(data []float32) float32
}

type State int

const (
	Idle State = iota
	Warming
	Measuring
	Reported
)

var stateNames = [...]string{
	Idle:      "idle",
	Warming:   "warming",
	Measuring: "measuring",
	Reported:  "reported",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// sink receives every checksum so the calls producing it stay observable.
var sink float64

// Harness times one summer at a time. It is not safe for concurrent use.
type Harness struct {
	log   *zap.Logger
	state State
}

func New(log *zap.Logger) *Harness {
	if log == nil {
		log = zap.NewNop()
	}
	return &Harness{log: log}
}

func (h *Harness) State() State { return h.state }

func (h *Harness) enter(s State, name string) {
	h.log.Debug("harness state", zap.String("summer", name), zap.Stringer("from", h.state), zap.Stringer("to", s))
	h.state = s
}

// Run calls s.Sum(data) warmup times without timing it and then iterations
// times, recording the wall clock duration of each call. Every returned
// scalar is folded into the result checksum.
func Run(s Summer, data []float32, warmup, iterations int) (*Result, error) {
	return New(nil).Run(s, data, warmup, iterations)
}

func (h *Harness) Run(s Summer, data []float32, warmup, iterations int) (*Result, error) {
	if warmup < 0 {
		return nil, conf.Invalid("warmup", "must be >= 0, got %d", warmup)
	}
	if iterations < 0 {
		return nil, conf.Invalid("iterations", "must be >= 0, got %d", iterations)
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	res := &Result{
		Name:      s.Name(),
		Durations: make([]time.Duration, 0, iterations),
	}

	h.enter(Warming, res.Name)
	for range warmup {
		res.Checksum += float64(s.Sum(data))
	}

	runtime.GC()

	h.enter(Measuring, res.Name)
	for range iterations {
		start := time.Now()
		v := s.Sum(data)
		elapsed := time.Since(start)

		res.Sum = v
		res.Checksum += float64(v)
		res.Durations = append(res.Durations, elapsed)
	}

	sink += res.Checksum
	h.enter(Reported, res.Name)

	return res, nil
}
