package conf

import (
	"os"

	"github.com/zeebo/errs/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultElements   = 40_000_000
	DefaultLanes      = 4
	DefaultWarmup     = 3
	DefaultIterations = 10
	DefaultSeed       = 1
	DefaultMode       = "constant"
	DefaultValue      = 1.1
	DefaultTolerance  = 1e-3
)

// Config is everything a benchmark run needs. It is passed explicitly to the
// functions that use it; nothing reads it from the environment.
type Config struct {
	Elements   int     `yaml:"elements"`
	Lanes      int     `yaml:"lanes"`
	Warmup     int     `yaml:"warmup"`
	Iterations int     `yaml:"iterations"`
	Seed       uint64  `yaml:"seed"`
	Mode       string  `yaml:"mode"`
	Value      float32 `yaml:"value"`
	Tolerance  float64 `yaml:"tolerance"`
}

func Defaults() Config {
	return Config{
		Elements:   DefaultElements,
		Lanes:      DefaultLanes,
		Warmup:     DefaultWarmup,
		Iterations: DefaultIterations,
		Seed:       DefaultSeed,
		Mode:       DefaultMode,
		Value:      DefaultValue,
		Tolerance:  DefaultTolerance,
	}
}

// Validate reports every invalid field at once. Mode names are checked by
// the sample package when the buffer is generated.
func (c Config) Validate() error {
	var eg errs.Group
	if c.Elements < 0 {
		eg.Add(Invalid("elements", "must be >= 0, got %d", c.Elements))
	}
	if c.Lanes < 1 {
		eg.Add(Invalid("lanes", "must be >= 1, got %d", c.Lanes))
	}
	if c.Warmup < 0 {
		eg.Add(Invalid("warmup", "must be >= 0, got %d", c.Warmup))
	}
	if c.Iterations < 0 {
		eg.Add(Invalid("iterations", "must be >= 0, got %d", c.Iterations))
	}
	if !(c.Tolerance > 0) {
		eg.Add(Invalid("tolerance", "must be > 0, got %v", c.Tolerance))
	}
	return eg.Err()
}

// Load reads a YAML file over the defaults. Fields missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, Invalid("file", "%v", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, Invalid("file", "%v", err)
	}
	return cfg, nil
}
