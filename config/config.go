// SPDX-License-Identifier: MIT

// Package config loads the optional TOML configuration of the linsolve CLI.
//
// Example linsolve.toml:
//
//	[solver]
//	epsilon = 1e-5          # zero tolerance for pivots, residuals, integer snapping
//	integer_results = false # fail when a value is not integer-valued
//	verify = true           # substitute results back into every equation
//
//	[output]
//	format = "text"         # text | json | yaml
//	color = false
//
//	[log]
//	level = "warn"          # debug | info | warn | error
//	format = "text"         # text | json
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/report"
	"github.com/katalvlaran/linsolve/solver"
)

// EnvConfig names the environment variable that points to a config file.
const EnvConfig = "LINSOLVE_CONFIG"

// Format names shared by output.format and log.format.
const (
	FormatText = string(report.Text)
	FormatJSON = string(report.JSON)
	FormatYAML = string(report.YAML)
)

var (
	// ErrInvalid is returned for values outside their documented domain.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownKey is returned when the file carries keys this version does not know.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config holds the complete CLI configuration.
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// SolverConfig holds the numeric policy.
type SolverConfig struct {
	Epsilon        float64 `toml:"epsilon"`
	IntegerResults bool    `toml:"integer_results"`
	Verify         bool    `toml:"verify"`
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	c := &Config{}
	c.Solver.Epsilon = matrix.DefaultEpsilon
	c.Normalize()

	return c
}

// Load loads configuration from a TOML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}

	// An explicit epsilon = 0 is legal; only a missing key takes the default.
	if !md.IsDefined("solver", "epsilon") {
		cfg.Solver.Epsilon = matrix.DefaultEpsilon
	}
	cfg.Normalize()

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

// LoadFromEnv loads the file named by LINSOLVE_CONFIG, then the default
// locations. Without any file it returns Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"./linsolve.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "linsolve", "config.toml"))
	}

	return paths
}

// logLevels maps log.level names to slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Normalize trims and lower-cases the string settings and fills in defaults
// for empty ones. Load calls it; callers that override fields afterwards
// (command-line flags) call it again before Validate.
func (c *Config) Normalize() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.applyDefaults()
}

// applyDefaults sets default values for missing string settings.
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = FormatText
	}
}

// Validate checks every field against its domain.
func (c *Config) Validate() error {
	if math.IsNaN(c.Solver.Epsilon) || math.IsInf(c.Solver.Epsilon, 0) || c.Solver.Epsilon < 0 {
		return fmt.Errorf("%w: solver.epsilon = %v", ErrInvalid, c.Solver.Epsilon)
	}
	if _, err := c.OutputFormat(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log.format = %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// OutputFormat parses output.format.
func (c *Config) OutputFormat() (report.Format, error) {
	f, err := report.ParseFormat(c.Output.Format)
	if err != nil {
		return "", fmt.Errorf("%w: output.format: %w", ErrInvalid, err)
	}

	return f, nil
}

// LogLevel parses log.level.
func (c *Config) LogLevel() (slog.Level, error) {
	level, ok := logLevels[strings.ToLower(strings.TrimSpace(c.Log.Level))]
	if !ok {
		return 0, fmt.Errorf("%w: log.level = %q", ErrInvalid, c.Log.Level)
	}

	return level, nil
}

// SolverOptions translates the numeric policy into solver options.
// Call Validate first; an invalid epsilon panics inside solver.WithEpsilon.
func (c *Config) SolverOptions() []solver.Option {
	opts := []solver.Option{solver.WithEpsilon(c.Solver.Epsilon)}
	if c.Solver.IntegerResults {
		opts = append(opts, solver.WithIntegerResults())
	}
	if c.Solver.Verify {
		opts = append(opts, solver.WithVerify())
	}

	return opts
}
