// Package config holds the run configuration: which hypergraph to read,
// where to write, and which projections to produce.
//
// Values resolve in order: Default, then the YAML file given to Load, then
// command-line overrides applied by the caller, then Validate.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hyperwalk/logging"
	"github.com/katalvlaran/hyperwalk/representation"
)

// ErrInvalid indicates a configuration that failed Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete run configuration.
type Config struct {
	// Input is the hypergraph file.
	Input string `yaml:"input"`

	// OutputDir receives one .net file per projection.
	OutputDir string `yaml:"output_dir"`

	// Name is the output file stem; empty means the input's base name.
	Name string `yaml:"name"`

	// Workers bounds how many projections run at once.
	Workers int `yaml:"workers"`

	LargestComponent bool `yaml:"largest_component"`
	DropDangling     bool `yaml:"drop_dangling"`

	Log Log `yaml:"log"`

	// Projections lists what to write; empty means every kind and walk.
	Projections []Projection `yaml:"projections"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Projection names one output by kind and walk mode.
type Projection struct {
	Kind string `yaml:"kind"`
	Walk string `yaml:"walk"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputDir: ".",
		Workers:   4,
		Log: Log{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// Load reads path over Default. An empty path, or a file with no YAML
// document in it, returns Default unchanged. Unknown YAML keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	// io.EOF: the file holds no document at all.
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}

	return cfg, nil
}

// Stem returns Name, or the input file's base name without extension.
func (c *Config) Stem() string {
	if c.Name != "" {
		return c.Name
	}
	base := filepath.Base(c.Input)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("input is required"))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output_dir is required"))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if _, err := logging.New(c.Log.Level, c.Log.Format); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	for i, p := range c.Projections {
		if _, err := representation.ParseKind(p.Kind); err != nil {
			errs = append(errs, fmt.Errorf("projections[%d]: %w", i, err))
		}
		if _, err := representation.ParseWalk(p.Walk); err != nil {
			errs = append(errs, fmt.Errorf("projections[%d]: %w", i, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("Validate: %w: %w", ErrInvalid, errors.Join(errs...))
}
