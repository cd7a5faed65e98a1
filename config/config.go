// Package config loads the command-line front end's configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rollingthunder/linconst/ode"
	"github.com/rollingthunder/linconst/util"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatHTML = "html"
)

var (
	ErrUnknownFormat = errors.New("config: unknown output format")
	// ErrBadSampling is returned for a non-positive step or a non-finite grid.
	ErrBadSampling = errors.New("config: sampling step must be positive and finite")
)

// Config holds the complete front end configuration
type Config struct {
	Sampling SamplingConfig `toml:"sampling"`
	Output   OutputConfig   `toml:"output"`
	Problems ProblemsConfig `toml:"problems"`
}

// SamplingConfig is the grid the solution curve is evaluated on
type SamplingConfig struct {
	From  float64 `toml:"from"`
	Step  float64 `toml:"step"`
	Count int     `toml:"count"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	// Path, if set, receives the report instead of stdout
	Path string `toml:"path"`
}

type ProblemsConfig struct {
	File string `toml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by LINCONST_CONFIG, else the first
// existing default location, else the defaults.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("LINCONST_CONFIG")
	if path == "" {
		defaultPaths := []string{
			"./linconst.toml",
			filepath.Join(os.Getenv("HOME"), ".config/linconst/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.Sampling.Step == 0 {
		c.Sampling.Step = ode.DefaultSampleStep
	}
	if c.Sampling.Count == 0 {
		c.Sampling.Count = ode.DefaultSampleCount
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
}

func (c *Config) expandEnvVars() {
	c.Output.Path = os.ExpandEnv(c.Output.Path)
	c.Problems.File = os.ExpandEnv(c.Problems.File)
}

// Validate checks the output format and the sampling grid.
// The step must be positive; a zero step would repeat the same abscissa.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML, FormatHTML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Output.Format)
	}
	if c.Sampling.Count < 0 {
		return fmt.Errorf("config: negative sample count %d", c.Sampling.Count)
	}
	if c.Sampling.Step <= 0 || !util.IsFinite(c.Sampling.Step, c.Sampling.From) {
		return fmt.Errorf("%w: from %g step %g", ErrBadSampling, c.Sampling.From, c.Sampling.Step)
	}
	return nil
}
