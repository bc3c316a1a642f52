// Command ilpsum times a single-accumulator float32 sum against sums that
// split the work over independent accumulators.
//
// Usage:
//
//	ilpsum [flags]
//
// Examples:
//
//	ilpsum
//	ilpsum -n 1000000 -lanes 8 -iters 50
//	ilpsum -config bench.yaml -mode random -seed 7
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/histdb/ilpsum"
	"github.com/histdb/ilpsum/conf"
)

func main() {
	log, err := newLogger(hasVerbose(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ilpsum: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.Error("benchmark failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, log *zap.Logger) error {
	cfg, err := parseConfig(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}

	rep, err := ilpsum.Run(cfg, log)
	if err != nil {
		return err
	}

	_, err = rep.WriteTo(stdout)
	return err
}

// parseConfig applies, in order, the defaults, the file named by -config and
// every flag set explicitly on the command line.
func parseConfig(args []string, output io.Writer) (conf.Config, error) {
	fs := flag.NewFlagSet("ilpsum", flag.ContinueOnError)
	fs.SetOutput(output)

	def := conf.Defaults()
	var (
		path       = fs.String("config", "", "YAML file with benchmark settings")
		elements   = fs.Int("n", def.Elements, "number of float32 samples")
		lanes      = fs.Int("lanes", def.Lanes, "independent accumulators for the prepped variants")
		warmup     = fs.Int("warmup", def.Warmup, "untimed calls per variant")
		iterations = fs.Int("iters", def.Iterations, "timed calls per variant")
		seed       = fs.Uint64("seed", def.Seed, "seed for -mode random")
		mode       = fs.String("mode", def.Mode, "sample generator: ramp, constant or random")
		value      = fs.Float64("value", float64(def.Value), "sample value for -mode constant")
		tolerance  = fs.Float64("tol", def.Tolerance, "allowed disagreement relative to the total magnitude")
		_          = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); errors.Is(err, flag.ErrHelp) {
		return conf.Config{}, err
	} else if err != nil {
		return conf.Config{}, conf.Invalid("flags", "%v", err)
	}
	if fs.NArg() > 0 {
		return conf.Config{}, conf.Invalid("flags", "unexpected arguments %q", fs.Args())
	}

	cfg := def
	if *path != "" {
		loaded, err := conf.Load(*path)
		if err != nil {
			return conf.Config{}, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Elements = *elements
		case "lanes":
			cfg.Lanes = *lanes
		case "warmup":
			cfg.Warmup = *warmup
		case "iters":
			cfg.Iterations = *iterations
		case "seed":
			cfg.Seed = *seed
		case "mode":
			cfg.Mode = *mode
		case "value":
			cfg.Value = float32(*value)
		case "tol":
			cfg.Tolerance = *tolerance
		}
	})

	return cfg, cfg.Validate()
}

func hasVerbose(args []string) bool {
	for _, arg := range args {
		if arg == "-v" || arg == "--v" || arg == "-v=true" || arg == "--v=true" {
			return true
		}
	}
	return false
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
