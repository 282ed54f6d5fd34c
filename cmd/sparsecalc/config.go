// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsparse/session"
	"gopkg.in/yaml.v3"
)

// Environment variables overlaid on top of the YAML file.
const (
	envConfig   = "SPARSECALC_CONFIG"
	envOperator = "SPARSECALC_OPERATOR"
	envLenient  = "SPARSECALC_LENIENT"
	envLogLevel = "SPARSECALC_LOG_LEVEL"
	envScale    = "SPARSECALC_SCALE"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("sparsecalc: invalid config")

// Config is the on-disk configuration (sparsecalc.yaml).
type Config struct {
	// Operator applied by eval: "+", "-", "*" or a name accepted by
	// session.ParseOperator.
	Operator string `yaml:"operator"`

	// Lenient stores NaN for unparseable values instead of failing.
	Lenient bool `yaml:"lenient"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Scale is the default factor of the scale command.
	Scale float64 `yaml:"scale"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Operator: string(session.OpAdd),
		Lenient:  false,
		LogLevel: "warn",
		Scale:    1,
	}
}

// LoadConfig reads path over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overlays SPARSECALC_* variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(envOperator); ok {
		c.Operator = v
	}
	if v, ok := lookup(envLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(envLenient); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envLenient, err)
		}
		c.Lenient = b
	}
	if v, ok := lookup(envScale); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", envScale, err)
		}
		c.Scale = f
	}

	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := session.ParseOperator(c.Operator); err != nil {
		return fmt.Errorf("%w: operator: %w", ErrInvalidConfig, err)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w: scale must be finite, got %v", ErrInvalidConfig, c.Scale)
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("log_level %q is not one of debug, info, warn, error", s)
}
