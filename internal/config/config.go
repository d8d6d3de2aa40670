package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/chebsolve/internal/bvp"
)

const (
	DefaultTolerance     = 1e-10
	DefaultMaxIterations = 30
	DefaultMinDegree     = 16
	DefaultMaxDegree     = 4096
	DefaultSamples       = 200
)

type Config struct {
	Problem       string  `yaml:"problem"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	MinDegree     int     `yaml:"min_degree"`
	MaxDegree     int     `yaml:"max_degree"`
	Damping       string  `yaml:"damping"`
	// Samples is the number of points written when exporting or plotting a
	// solution.
	Samples int `yaml:"samples"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem:       "cooling",
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		MinDegree:     DefaultMinDegree,
		MaxDegree:     DefaultMaxDegree,
		Damping:       "linesearch",
		Samples:       DefaultSamples,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SolverConfig translates the file-level settings into the solver's own
// configuration type.
func (c *Config) SolverConfig() (bvp.Config, error) {
	damping, err := bvp.ParseDamping(c.Damping)
	if err != nil {
		return bvp.Config{}, fmt.Errorf("config: %w", err)
	}
	return bvp.Config{
		Tolerance:     c.Tolerance,
		MaxIterations: c.MaxIterations,
		MinDegree:     c.MinDegree,
		MaxDegree:     c.MaxDegree,
		Damping:       damping,
	}, nil
}
