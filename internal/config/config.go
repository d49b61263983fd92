package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds all petsignal configuration.
type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Output  OutputConfig  `toml:"output"`
	Logging LoggingConfig `toml:"logging"`
}

// EngineConfig holds interpretation engine settings.
type EngineConfig struct {
	SignalsPath string `toml:"signals_path"` // empty means the embedded catalogue
	Workers     int    `toml:"workers"`
	Collapse    bool   `toml:"collapse"` // merge consecutive identical results in streams
}

// OutputConfig holds output destination settings.
type OutputConfig struct {
	Format    string `toml:"format"` // "stdout", "pretty", "file"
	Path      string `toml:"path"`
	Pretty    bool   `toml:"pretty"`
	Verbosity string `toml:"verbosity"` // "minimal", "standard", "full"
	MaxSize   int64  `toml:"max_size"`  // file rotation threshold in bytes, 0 disables
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Format:    "stdout",
			Verbosity: "standard",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, the optional TOML file named
// by PETSIGNAL_CONFIG, and environment variables, in increasing precedence.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("PETSIGNAL_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// mergeFile overlays the keys present in a TOML file onto c.
func (c *Config) mergeFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Engine.SignalsPath = getenv("PETSIGNAL_SIGNALS_PATH", c.Engine.SignalsPath)
	c.Engine.Workers = getenvInt("PETSIGNAL_WORKERS", c.Engine.Workers)
	c.Engine.Collapse = getenvBool("PETSIGNAL_COLLAPSE", c.Engine.Collapse)
	c.Output.Format = getenv("PETSIGNAL_OUTPUT", c.Output.Format)
	c.Output.Path = getenv("PETSIGNAL_OUTPUT_PATH", c.Output.Path)
	c.Output.Pretty = getenvBool("PETSIGNAL_OUTPUT_PRETTY", c.Output.Pretty)
	c.Output.Verbosity = getenv("PETSIGNAL_VERBOSITY", c.Output.Verbosity)
	c.Output.MaxSize = int64(getenvInt("PETSIGNAL_OUTPUT_MAX_SIZE", int(c.Output.MaxSize)))
	c.Logging.Level = getenv("PETSIGNAL_LOG_LEVEL", c.Logging.Level)
}

// Validate checks that all settings hold usable values. Every problem is
// reported, not just the first. The signals file is not checked: a missing
// or broken catalogue degrades to an empty one when the engine loads it.
func (c Config) Validate() error {
	var errs []error
	switch c.Output.Format {
	case "stdout", "pretty":
	case "file":
		if c.Output.Path == "" {
			errs = append(errs, errors.New("config: output format \"file\" requires an output path"))
		}
	default:
		errs = append(errs, fmt.Errorf("config: unknown output format %q", c.Output.Format))
	}
	switch c.Output.Verbosity {
	case "minimal", "standard", "full":
	default:
		errs = append(errs, fmt.Errorf("config: unknown verbosity %q", c.Output.Verbosity))
	}
	if c.Engine.Workers < 1 {
		errs = append(errs, fmt.Errorf("config: workers must be at least 1, got %d", c.Engine.Workers))
	}
	if c.Output.MaxSize < 0 {
		errs = append(errs, fmt.Errorf("config: output max size must not be negative, got %d", c.Output.MaxSize))
	}
	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
