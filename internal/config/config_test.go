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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[property_service]
url = "http://localhost:8000"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Hourly.PollIntervalSeconds)
	assert.Equal(t, 300, cfg.Cache.ReferenceTTLSeconds)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[property_service]
url = "http://property:8000"
timeout = 5
auth_token = "secret"

[hourly]
poll_interval_seconds = 15

[ratelimit]
enabled = true
rps = 20.0
burst = 40

[metrics]
enabled = true
path = "/metrics"
service_name = "hs-ops-service"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "http://property:8000", cfg.PropertyService.URL)
	assert.Equal(t, "secret", cfg.PropertyService.AuthToken)
	assert.Equal(t, 15, cfg.Hourly.PollIntervalSeconds)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 40, cfg.RateLimit.Burst)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_MissingPropertyServiceURL(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "hsops",
		Password: "secret",
		DBName:   "hs_ops_service",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=hsops password=secret dbname=hs_ops_service sslmode=disable",
		cfg.DSN())
}
