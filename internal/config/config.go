package config

import (
	"errors"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config contains runtime configuration required by the service.
type Config struct {
	Addr     string `koanf:"addr"`
	DBURL    string `koanf:"db_url"`
	LogLevel string `koanf:"log_level"`
}

func defaults() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: "info",
	}
}

// Load builds the configuration from defaults overridden by CATALOG_*
// environment variables: CATALOG_ADDR, CATALOG_DB_URL, CATALOG_LOG_LEVEL.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return Config{}, err
	}

	envProvider := env.Provider("CATALOG_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CATALOG_"))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.DBURL) == "" {
		return Config{}, errors.New("CATALOG_DB_URL required")
	}
	return cfg, nil
}
