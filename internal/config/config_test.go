package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/service/restrictions"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
shutdown_timeout = 5

[database]
host = "db"
dbname = "ashram"
max_open_conns = 10
max_idle_conns = 2

[booking]
partial_window_policy = "open_ended"

[redis]
enabled = true
addr = "redis:6379"
ttl = 60
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout, "default kept for omitted keys")
	assert.Equal(t, "ashram", cfg.Database.DBName)
	assert.Equal(t, restrictions.WindowPolicyOpenEnded, cfg.Booking.WindowPolicy())
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 60, cfg.Redis.TTL)
	assert.Contains(t, cfg.Database.DSN(), "host=db port=5432")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db"
password = "from-file"
`)
	t.Setenv("DB_HOST", "pg.internal")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("HTTP_PORT", "8181")
	t.Setenv("METRICS_ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pg.internal", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, 8181, cfg.Server.HTTPPort)
	assert.True(t, cfg.Metrics.Enabled)

	t.Setenv("HTTP_PORT", "eighty")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, restrictions.WindowPolicyAlways, cfg.Booking.WindowPolicy())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "syntax", body: `[server`},
		{name: "port", body: "[server]\nhttp_port = 70000"},
		{name: "policy", body: "[booking]\npartial_window_policy = \"sometimes\""},
		{name: "pool", body: "[database]\nmax_open_conns = 1\nmax_idle_conns = 5"},
		{name: "guest service url", body: "[guest_service]\nenabled = true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
