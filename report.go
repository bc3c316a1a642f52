package ilpsum

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// WriteTo renders the report as a plain text table.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "host:    %s (%s, %s)\n", orNone(r.Host.Brand), r.Host.Arch, r.Host.GoVersion)
	fmt.Fprintf(&buf, "cores:   %d physical, %d logical\n", r.Host.PhysicalCores, r.Host.LogicalCores)
	fmt.Fprintf(&buf, "cache:   L1d %s, L2 %s, L3 %s\n", size(r.Host.L1D), size(r.Host.L2), size(r.Host.L3))
	fmt.Fprintf(&buf, "isa:     %s\n", orNone(strings.Join(r.Host.features(), " ")))
	fmt.Fprintf(&buf, "samples: %d float32 (%d bytes), mode %s, digest %016x\n", r.Elements, r.Bytes, r.Mode, r.Digest)
	fmt.Fprintf(&buf, "runs:    %d warmup, %d measured, best of measured\n", r.Config.Warmup, r.Config.Iterations)
	fmt.Fprintf(&buf, "ref:     %g (float64)\n\n", r.Reference)

	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "variant\tlanes\tbest ms\tmedian ms\tGB/s\tspeedup\tsum\trel err\t")
	for _, row := range r.Rows {
		if len(row.Result.Durations) == 0 {
			fmt.Fprintf(tw, "%s\t%d\t-\t-\t-\t-\t-\t-\t\n", row.Name, row.Lanes)
			continue
		}
		mark := ""
		if row.Disagrees {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t%.2f\t%.2fx\t%g%s\t%.2e\t\n",
			row.Name, row.Lanes,
			millis(row.Best), millis(row.Median),
			row.GBps, row.Speedup,
			row.Result.Sum, mark, row.RelErr)
	}
	if err := tw.Flush(); err != nil {
		return 0, err
	}

	for _, row := range r.Rows {
		if row.Disagrees {
			fmt.Fprintf(&buf, "\n* differs from naive by more than %g of the total magnitude\n", r.Config.Tolerance)
			break
		}
	}

	return buf.WriteTo(w)
}

func millis(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }

func orNone(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func size(n int) string {
	switch {
	case n <= 0:
		return "?"
	case n >= 1<<30 && n%(1<<30) == 0:
		return fmt.Sprintf("%dGiB", n>>30)
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%dMiB", n>>20)
	case n >= 1<<10 && n%(1<<10) == 0:
		return fmt.Sprintf("%dKiB", n>>10)
	default:
		return fmt.Sprintf("%dB", n)
	}
}
