package config

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/sw965/newton"
	"github.com/sw965/newton/field"
)

// Config holds the solver settings of the demo command.
type Config struct {
	// Tolerance is kept as text and parsed per representation, so "1/1000000"
	// stays exact for rational runs.
	Tolerance     string `yaml:"tolerance" toml:"tolerance"`
	MaxIterations int    `yaml:"max_iterations" toml:"max_iterations"`
	Rational      bool   `yaml:"rational" toml:"rational"`
	// Workers is the parallelism of multistart runs.
	Workers int `yaml:"workers" toml:"workers"`
}

const DefaultTolerance = "1e-6"

func Default() Config {
	return Config{
		Tolerance:     DefaultTolerance,
		MaxIterations: newton.DefaultMaxIterations,
		Workers:       1,
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file on top of Default.
// Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing YAML: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("parsing TOML: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: %d", newton.ErrInvalidMaxIterations, c.MaxIterations)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Rational {
		_, err := c.RatTolerance()
		return err
	}
	_, err := c.FloatTolerance()
	return err
}

func (c Config) FloatTolerance() (float64, error) {
	s := strings.TrimSpace(c.Tolerance)
	eps, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// "1/1000000" is accepted for float runs too
		r, rerr := field.ParseRat(s)
		if rerr != nil {
			return 0, fmt.Errorf("%w: %q", newton.ErrInvalidTolerance, c.Tolerance)
		}
		eps, _ = r.Float64()
	}
	if eps < 0 {
		return 0, fmt.Errorf("%w: %q", newton.ErrInvalidTolerance, c.Tolerance)
	}
	return eps, nil
}

func (c Config) RatTolerance() (*big.Rat, error) {
	eps, err := field.ParseRat(strings.TrimSpace(c.Tolerance))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", newton.ErrInvalidTolerance, err)
	}
	if eps.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", newton.ErrInvalidTolerance, c.Tolerance)
	}
	return eps, nil
}
