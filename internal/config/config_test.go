package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Auth.DemoMode)
	assert.Equal(t, "admin@temanikan.com", cfg.Auth.AdminEmail)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 3*time.Second, cfg.FeedPeriod)
	assert.Equal(t, 2*time.Second, cfg.DiagnosisDelay)
	assert.Equal(t, 5*time.Second, cfg.EmergencyClean)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yml := `port: "9090"
log:
  level: debug
auth:
  demo_mode: false
  token_ttl: 30m
telemetry:
  period: 1s
cors:
  allowed_origins:
    - http://localhost:5173
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o600))
	t.Setenv("TEMANIKAN_TELEMETRY_PERIOD", "500ms")

	cfg, err := Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Auth.DemoMode)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 500*time.Millisecond, cfg.FeedPeriod)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TEMANIKAN_PORT=7070\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TEMANIKAN_PORT") })

	cfg, err := Load(dir, envFile)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("TEMANIKAN_AUTH_ADMIN_EMAIL", "not-an-email")

	_, err := Load(t.TempDir(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
