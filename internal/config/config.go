package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvVar names environment variable which points to the configuration file
const EnvVar = "WBB_CONFIG"

// DefaultPath is checked when neither flag nor environment variable is set
const DefaultPath = "./wbb.toml"

// Config holds the compiler configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Output  OutputConfig  `toml:"output"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
}

// OutputConfig controls where generated documents are written
type OutputConfig struct {
	Extension string `toml:"extension"`
	Dir       string `toml:"dir"`
}

// Default returns configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
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

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Resolve loads configuration from path, or from WBB_CONFIG, or from ./wbb.toml, in this
// order. Defaults are returned when path is empty and no file is found.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	if env := os.Getenv(EnvVar); env != "" {
		return Load(env)
	}

	if _, err := os.Stat(DefaultPath); err == nil {
		return Load(DefaultPath)
	}

	return Default(), nil
}

// Level converts configured log level to slog level
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.General.LogLevel)
	return level
}

func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.Output.Extension == "" {
		c.Output.Extension = ".html"
	}
	if !strings.HasPrefix(c.Output.Extension, ".") {
		c.Output.Extension = "." + c.Output.Extension
	}
}

func (c *Config) validate() error {
	if _, ok := parseLevel(c.General.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q", c.General.LogLevel)
	}

	if strings.ContainsAny(c.Output.Extension, `/\`) {
		return fmt.Errorf("output extension %q must not contain path separators", c.Output.Extension)
	}

	return nil
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
