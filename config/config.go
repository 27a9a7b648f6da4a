// Package config holds the run configuration of the harness and builds the
// benches it describes.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/fpdiff/core"
	"github.com/sarchlab/fpdiff/oracle"
)

// EnvPath names the environment variable holding the configuration path.
const EnvPath = "FPDIFF_CONFIG"

// DefaultPath is read when EnvPath is unset. A missing default file means
// the defaults.
const DefaultPath = "fpdiff.yaml"

// Config is the run configuration.
type Config struct {
	BuildDir         string        `yaml:"build_dir"`
	Simulator        []string      `yaml:"simulator"`
	Workers          int           `yaml:"workers"`
	Timeout          time.Duration `yaml:"timeout"`
	MaxHalfCycles    int           `yaml:"max_half_cycles"`
	FinishOnSettle   bool          `yaml:"finish_on_settle"`
	Latency          int           `yaml:"latency"`
	FreqGHz          float64       `yaml:"freq_ghz"`
	Quirks           []string      `yaml:"quirks"`
	Trace            bool          `yaml:"trace"`
	LogFile          string        `yaml:"log_file"`
	LogLevel         string        `yaml:"log_level"`
	FailOnDivergence bool          `yaml:"fail_on_divergence"`
	Verbose          bool          `yaml:"verbose"`
}

// Default returns the default configuration. Without a simulator command the
// oracle runs the software unit in-process.
func Default() Config {
	return Config{
		BuildDir:      "build",
		Workers:       4,
		Timeout:       oracle.DefaultTimeout,
		MaxHalfCycles: 11,
		Latency:       3,
		FreqGHz:       1,
		Trace:         true,
		LogLevel:      "warn",
	}
}

// Load reads the configuration at path on top of the defaults. Unknown keys
// are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, &StartupError{Path: path, Err: err}
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	err = dec.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return cfg, &StartupError{Path: path, Err: fmt.Errorf("failed to parse config: %w", err)}
	}

	err = cfg.Validate()
	if err != nil {
		return cfg, &StartupError{Path: path, Err: err}
	}

	return cfg, nil
}

// LoadFromEnv loads the configuration named by EnvPath, or DefaultPath if it
// is unset. It returns the path it used.
func LoadFromEnv() (Config, string, error) {
	path := os.Getenv(EnvPath)
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}

	_, err := os.Stat(DefaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), "", nil
	}

	cfg, err := Load(DefaultPath)

	return cfg, DefaultPath, err
}

// Validate checks the configuration.
func (c Config) Validate() error {
	switch {
	case c.BuildDir == "":
		return errors.New("build_dir must not be empty")
	case c.Workers < 1:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	case c.Timeout <= 0:
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	case c.MaxHalfCycles < 1:
		return fmt.Errorf("max_half_cycles must be positive, got %d", c.MaxHalfCycles)
	case c.Latency < 0:
		return fmt.Errorf("latency must not be negative, got %d", c.Latency)
	case c.FreqGHz <= 0:
		return fmt.Errorf("freq_ghz must be positive, got %g", c.FreqGHz)
	}

	if _, err := c.ParsedQuirks(); err != nil {
		return err
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// ParsedQuirks returns the configured quirks.
func (c Config) ParsedQuirks() ([]core.Quirk, error) {
	quirks := make([]core.Quirk, 0, len(c.Quirks))
	for _, name := range c.Quirks {
		q, err := core.ParseQuirk(name)
		if err != nil {
			return nil, err
		}
		quirks = append(quirks, q)
	}

	return quirks, nil
}

// SlogLevel returns the configured log level. "trace" selects
// core.LevelTrace.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "trace":
		return core.LevelTrace, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
}
