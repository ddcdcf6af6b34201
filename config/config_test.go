package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  rate_limit_per_sec: 25
database:
  dsn: "host=db user=argus dbname=argus"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 25.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, "host=db user=argus dbname=argus", cfg.Database.DSN)

	// Unset values fall back to defaults.
	assert.Equal(t, 5, cfg.Server.RateLimitBurst)
	assert.Equal(t, 60, cfg.Server.CacheTTLSeconds)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 30, cfg.Database.ConnMaxLifetimeMinutes)
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, "server: {}\ndatabase: {}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10.0, cfg.Server.RateLimitPerSec)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
