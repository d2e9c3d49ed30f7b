package config

import (
	"os"

	"go.uber.org/config"

	"github.com/uniquetopup/ff_info_bot/discord"
	"github.com/uniquetopup/ff_info_bot/freefire"
	"github.com/uniquetopup/ff_info_bot/limiter"
	"github.com/uniquetopup/ff_info_bot/logger"
	"github.com/uniquetopup/ff_info_bot/session"
)

// HealthConfig holds the keep-alive HTTP listener configuration.
// Hosting platforms that require an open port get /healthz here; empty
// disables the listener.
type HealthConfig struct {
	Addr string `yaml:"addr"`
}

// AppConfig holds all application configuration.
type AppConfig struct {
	Logger   logger.Config   `yaml:"logger"`
	Discord  discord.Config  `yaml:"discord"`
	FreeFire freefire.Config `yaml:"freefire"`
	Limiter  limiter.Config  `yaml:"limiter"`
	Session  session.Config  `yaml:"session"`
	Health   HealthConfig    `yaml:"health"`
}

// Load reads configuration from the specified YAML files.
// Files are merged in order, with later files overriding earlier ones.
// Missing files are silently ignored.
func Load(files ...string) (*AppConfig, error) {
	opts := make([]config.YAMLOption, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			opts = append(opts, config.File(f))
		}
	}

	if len(opts) == 0 {
		return nil, os.ErrNotExist
	}

	provider, err := config.NewYAML(opts...)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := provider.Get(config.Root).Populate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies per-package defaults.
func LoadWithDefaults(files ...string) (*AppConfig, error) {
	cfg, err := Load(files...)
	if err != nil {
		return nil, err
	}

	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
	if len(cfg.Logger.OutputPaths) == 0 {
		cfg.Logger.OutputPaths = []string{"stdout"}
	}

	cfg.FreeFire.Defaults()
	cfg.Limiter.Defaults()

	return cfg, nil
}
