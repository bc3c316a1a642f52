package ilpsum

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// Host describes the machine the numbers were taken on. Lane counts are only
// meaningful relative to the add latency and throughput of this CPU.
type Host struct {
	Brand         string
	Arch          string
	GoVersion     string
	PhysicalCores int
	LogicalCores  int
	L1D, L2, L3   int
	AVX2          bool
	AVX512F       bool
	FMA           bool
	ASIMD         bool
}

func DetectHost() Host {
	return Host{
		Brand:         cpuid.CPU.BrandName,
		Arch:          runtime.GOARCH,
		GoVersion:     runtime.Version(),
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		L1D:           cpuid.CPU.Cache.L1D,
		L2:            cpuid.CPU.Cache.L2,
		L3:            cpuid.CPU.Cache.L3,
		AVX2:          cpuid.CPU.Has(cpuid.AVX2),
		AVX512F:       cpuid.CPU.Has(cpuid.AVX512F),
		FMA:           cpuid.CPU.Has(cpuid.FMA3),
		ASIMD:         cpuid.CPU.Has(cpuid.ASIMD),
	}
}

func (h Host) features() (out []string) {
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"avx2", h.AVX2},
		{"avx512f", h.AVX512F},
		{"fma", h.FMA},
		{"asimd", h.ASIMD},
	} {
		if f.ok {
			out = append(out, f.name)
		}
	}
	return out
}
