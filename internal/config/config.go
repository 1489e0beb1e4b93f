// Package config loads command settings from defaults, an optional config
// file, LVMATH_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmath/newton"
)

// EnvPrefix is prepended to upper-cased keys, with dots as underscores:
// solver.tolerance is read from LVMATH_SOLVER_TOLERANCE.
const EnvPrefix = "LVMATH"

// Keys.
const (
	KeyTolerance     = "solver.tolerance"
	KeyMaxIterations = "solver.max_iterations"
	KeyLogLevel      = "log.level"
	KeyLogFormat     = "log.format"
	KeyOutput        = "output"
	KeyMetricsAddr   = "metrics.addr"
)

// Defaults.
const (
	DefaultTolerance = 1e-5
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultOutput    = OutputText
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the merged command configuration.
type Config struct {
	Solver  SolverConfig  `mapstructure:"solver"`
	Log     LogConfig     `mapstructure:"log"`
	Output  string        `mapstructure:"output"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// SolverConfig holds the Newton solver settings.
type SolverConfig struct {
	Tolerance     float64 `mapstructure:"tolerance"`
	MaxIterations int     `mapstructure:"max_iterations"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig holds the Prometheus listener address; empty disables it.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Solver: SolverConfig{Tolerance: DefaultTolerance, MaxIterations: newton.DefaultMaxIterations},
		Log:    LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Output: DefaultOutput,
	}
}

// New returns a viper instance with defaults and environment binding set.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyTolerance, d.Solver.Tolerance)
	v.SetDefault(KeyMaxIterations, d.Solver.MaxIterations)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFormat, d.Log.Format)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyMetricsAddr, d.Metrics.Addr)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (if non-empty), binds flags whose names are listed in
// bindings (config key → flag name) and returns the validated result.
func Load(v *viper.Viper, path string, flags *pflag.FlagSet, bindings map[string]string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	for key, name := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return Config{}, fmt.Errorf("config: bind %s: %w", name, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if !(c.Solver.Tolerance > 0) {
		return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidConfig, KeyTolerance, c.Solver.Tolerance)
	}
	if c.Solver.MaxIterations < 1 {
		return fmt.Errorf("%w: %s must be >= 1, got %d", ErrInvalidConfig, KeyMaxIterations, c.Solver.MaxIterations)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %s must be text or json, got %q", ErrInvalidConfig, KeyLogFormat, c.Log.Format)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: %s must be text or json, got %q", ErrInvalidConfig, KeyOutput, c.Output)
	}

	return nil
}

// SolverOptions maps the solver settings onto newton options.
func (c Config) SolverOptions() []newton.Option {
	return []newton.Option{newton.WithMaxIterations(c.Solver.MaxIterations)}
}

// NewLogger builds a slog.Logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(l.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyLogLevel, err)
	}

	return level, nil
}
