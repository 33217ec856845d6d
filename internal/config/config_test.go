package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDBURL(t *testing.T) {
	t.Setenv("CATALOG_DB_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CATALOG_DB_URL", "postgres://localhost:5432/catalog")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/catalog", cfg.DBURL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_DB_URL", "postgres://localhost:5432/catalog")
	t.Setenv("CATALOG_ADDR", ":9090")
	t.Setenv("CATALOG_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
}
