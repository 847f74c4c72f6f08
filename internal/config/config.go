// Package config loads the configuration of the benchmark harness from a YAML file.
package config

import (
	"github.com/janpfeifer/lavaGo/internal/sets"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"os"
)

// DefaultIterations of each backend benchmark.
const DefaultIterations = 1000

// Config of a benchmark run.
type Config struct {
	// Input path, see input.Open. Empty uses the built-in example.
	Input string `yaml:"input"`

	// Backends to compare, each a sets configuration string (see sets.ParseConfig).
	Backends []string `yaml:"backends"`

	// Iterations each backend is run for timing.
	Iterations int `yaml:"iterations"`

	// Expect is the expected surface area. Nil means no check.
	Expect *int `yaml:"expect"`
}

// Default returns a configuration comparing every backend on the built-in example.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads the configuration from a YAML file, filling defaults for the missing values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse a YAML configuration, filling defaults for the missing values.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (cfg *Config) setDefaults() {
	if len(cfg.Backends) == 0 {
		for _, kind := range sets.Kinds() {
			cfg.Backends = append(cfg.Backends, sets.DefaultConfig(kind).String())
		}
	}
	if cfg.Iterations == 0 {
		cfg.Iterations = DefaultIterations
	}
}

// SetConfigs parses the backends configuration strings.
func (cfg *Config) SetConfigs() ([]sets.Config, error) {
	if cfg.Iterations < 1 {
		return nil, errors.Errorf("iterations must be >= 1, got %d", cfg.Iterations)
	}
	configs := make([]sets.Config, 0, len(cfg.Backends))
	for _, backend := range cfg.Backends {
		c, err := sets.ParseConfig(backend)
		if err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}
	return configs, nil
}
