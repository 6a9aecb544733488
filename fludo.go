// Package fludo is a lightweight e-liquid calculator. The blending types live
// in package mix; this package wires process configuration into them.
package fludo

import (
	"context"
	"fmt"

	"fludo/internal/config"
	applog "fludo/internal/log"
	"fludo/mix"
)

// Version of the calculator.
const Version = "0.2.0"

// Configure loads the configuration from the environment (and the TOML file
// named by FLUDO_CONFIG), applies its log level and installs its mixing
// defaults for the mix constructors.
func Configure() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return apply(cfg)
}

func apply(cfg config.Config) error {
	if err := applog.SetLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}

	if err := mix.SetDefaults(mix.Defaults{
		PG:        cfg.Mixing.DefaultPG,
		Nicotine:  cfg.Mixing.DefaultNicotine,
		AromaName: cfg.Mixing.DefaultAromaName,
	}); err != nil {
		return fmt.Errorf("set mixing defaults: %w", err)
	}

	applog.Debug(context.Background(), "fludo configured",
		"version", Version,
		"default_pg", cfg.Mixing.DefaultPG,
		"default_nicotine", cfg.Mixing.DefaultNicotine,
	)
	return nil
}
