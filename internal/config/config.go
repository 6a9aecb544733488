package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config captures the runtime configuration of the calculator.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Mixing  MixingConfig  `toml:"mixing"`
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// MixingConfig holds the values liquid constructors fall back to.
type MixingConfig struct {
	DefaultPG        float64 `toml:"default_pg"`
	DefaultNicotine  float64 `toml:"default_nicotine"`
	DefaultAromaName string  `toml:"default_aroma_name"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Mixing: MixingConfig{
			DefaultPG:        50,
			DefaultNicotine:  6,
			DefaultAromaName: "Unnamed",
		},
	}
}

// Load builds a Config from the defaults, the TOML file named by FLUDO_CONFIG
// (if any) and environment overrides, in that order.
func Load() (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("FLUDO_CONFIG")); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Logging.Level = firstNonEmpty(
		os.Getenv("FLUDO_LOG_LEVEL"),
		os.Getenv("LOG_LEVEL"),
		cfg.Logging.Level,
	)
	cfg.Mixing.DefaultPG = parseFloatWithDefault(os.Getenv("FLUDO_DEFAULT_PG"), cfg.Mixing.DefaultPG)
	cfg.Mixing.DefaultNicotine = parseFloatWithDefault(os.Getenv("FLUDO_DEFAULT_NICOTINE"), cfg.Mixing.DefaultNicotine)
	cfg.Mixing.DefaultAromaName = strings.TrimSpace(firstNonEmpty(
		os.Getenv("FLUDO_DEFAULT_AROMA_NAME"),
		cfg.Mixing.DefaultAromaName,
	))

	if cfg.Mixing.DefaultAromaName == "" {
		return Config{}, fmt.Errorf("default aroma name must not be empty")
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseFloatWithDefault(value string, def float64) float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return def
	}
	return parsed
}
