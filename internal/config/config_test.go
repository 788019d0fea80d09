package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "calendar"

[calendar]
pixels_per_day = [30.0, 60.0]
default_zoom = 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "calendar", cfg.Database.DBName)
	assert.Equal(t, []float64{30, 60}, cfg.Calendar.PixelsPerDay)
	// Значения, не указанные в файле, берутся из Default
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 300, cfg.Calendar.GestureTTL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[database]
password = "from-file"
`)
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Server, cfg.Server)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "idle above open", mutate: func(c *Config) { c.Database.MaxIdleConns = 100 }},
		{name: "empty zoom levels", mutate: func(c *Config) { c.Calendar.PixelsPerDay = nil }},
		{name: "non-positive zoom", mutate: func(c *Config) { c.Calendar.PixelsPerDay = []float64{10, 0} }},
		{name: "default zoom out of range", mutate: func(c *Config) { c.Calendar.DefaultZoom = 5 }},
		{name: "zero gesture ttl", mutate: func(c *Config) { c.Calendar.GestureTTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}
