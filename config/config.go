// Package config - YAML configuration for the partition CLI and sweep.
//
// A Config starts from Default; a YAML file overrides the keys it names and
// CLI flags override the file. Every Config handed to a consumer has passed
// Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/albertqi/partition/instance"
	"github.com/albertqi/partition/solver"
)

// Defaults of the reference experiments.
const (
	DefaultSize     = 100
	DefaultTrials   = 50
	DefaultWorkers  = 1
	DefaultLogLevel = "info"
)

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the full set of runtime knobs.
type Config struct {
	// Iterations is the local-search budget per solver call.
	Iterations int `yaml:"iterations" validate:"gte=0"`

	// Seed drives every randomized run; 0 draws fresh entropy.
	Seed int64 `yaml:"seed"`

	// Size is the number of weights read from an input file.
	Size int `yaml:"size" validate:"gte=1"`

	Sweep Sweep `yaml:"sweep"`
	Log   Log   `yaml:"log"`

	// MetricsFile receives a Prometheus text dump after a sweep. Empty disables it.
	MetricsFile string `yaml:"metrics_file"`
}

// Sweep configures the experiment sweep.
type Sweep struct {
	Trials    int   `yaml:"trials" validate:"gte=1"`
	Size      int   `yaml:"size" validate:"gte=1"`
	MinWeight int64 `yaml:"min_weight" validate:"gte=1"`
	MaxWeight int64 `yaml:"max_weight" validate:"gtefield=MinWeight"`
	Workers   int   `yaml:"workers" validate:"gte=1,lte=256"`
}

// Log configures the stderr logger.
type Log struct {
	Level   string `yaml:"level" validate:"oneof=debug info warn error"`
	NoColor bool   `yaml:"no_color"`
}

// Default returns the configuration of the reference experiments.
func Default() Config {
	return Config{
		Iterations: solver.DefaultIterations,
		Size:       DefaultSize,
		Sweep: Sweep{
			Trials:    DefaultTrials,
			Size:      DefaultSize,
			MinWeight: instance.DefaultMinWeight,
			MaxWeight: instance.DefaultMaxWeight,
			Workers:   DefaultWorkers,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Parse decodes YAML over Default and validates the result. Unknown keys are
// rejected; an empty document yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path. A missing file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
