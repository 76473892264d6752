package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "arquivo", cfg.StorageDriver)
	assert.Equal(t, "./dados", cfg.DataDir)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATA_DIR", "/tmp/jackut")
	t.Setenv("DATABASE_URL", "postgres://localhost/jackut")

	var cfg Config
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.Equal(t, "/tmp/jackut", cfg.DataDir)
	assert.Equal(t, "postgres://localhost/jackut", cfg.DatabaseURL)
}
