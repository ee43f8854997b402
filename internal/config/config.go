// Package config loads check defaults from the environment and an
// optional YAML file. Flags always win; the environment covers the
// values that should not appear on a command line, like the CloudEndure
// password visible in the process table.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds tunable defaults for all checks.
type Config struct {
	HTTPTimeout time.Duration     `yaml:"http_timeout" env:"CHECKS_HTTP_TIMEOUT" env-default:"10s"`
	CloudEndure CloudEndureConfig `yaml:"cloudendure"`
}

// CloudEndureConfig holds CloudEndure API settings.
type CloudEndureConfig struct {
	URL               string        `yaml:"url" env:"CLOUDENDURE_URL" env-default:"https://dashboard.cloudendure.com/latest"`
	Username          string        `yaml:"username" env:"CLOUDENDURE_USERNAME"`
	Password          string        `yaml:"password" env:"CLOUDENDURE_PASSWORD"`
	WarningSyncDelay  time.Duration `yaml:"warning_sync_delay" env:"CLOUDENDURE_WARNING_SYNC_DELAY" env-default:"15s"`
	CriticalSyncDelay time.Duration `yaml:"critical_sync_delay" env:"CLOUDENDURE_CRITICAL_SYNC_DELAY" env-default:"900s"`
}

// Load reads configuration from the given YAML file plus the
// environment, or from the environment alone when path is empty.
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("reading environment: %w", err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return &cfg, nil
}
