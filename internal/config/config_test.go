package config_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/phonebook/internal/config"
)

var allVars = []string{
	"PORT", "LOG_LEVEL", "CORS_ORIGINS", "STORE_BACKEND",
	"DATABASE_URL", "MAX_BODY_BYTES", "SHUTDOWN_TIMEOUT",
}

// unsetAll clears every variable Load reads, restoring them after the test.
// envconfig treats an empty variable as set, so t.Setenv("") alone is not enough.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// TestLoad_defaults verifies that every variable falls back to its default
// and that the memory backend needs no DATABASE_URL.
func TestLoad_defaults(t *testing.T) {
	unsetAll(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Equal(t, config.BackendMemory, cfg.StoreBackend)
	require.Empty(t, cfg.DatabaseURL)
	require.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	unsetAll(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("STORE_BACKEND", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/phonebook")
	t.Setenv("MAX_BODY_BYTES", "4096")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, config.BackendPostgres, cfg.StoreBackend)
	require.Equal(t, "postgres://user:pass@db:5432/phonebook", cfg.DatabaseURL)
	require.Equal(t, int64(4096), cfg.MaxBodyBytes)
	require.Equal(t, 3*time.Second, cfg.ShutdownTimeout)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)
}

// TestLoad_postgresRequiresDatabaseURL verifies that an error naming the
// missing variable is returned when the postgres backend has no DSN.
func TestLoad_postgresRequiresDatabaseURL(t *testing.T) {
	unsetAll(t)
	t.Setenv("STORE_BACKEND", "postgres")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoad_unknownBackend(t *testing.T) {
	unsetAll(t)
	t.Setenv("STORE_BACKEND", "sqlite")

	_, err := config.Load()

	require.ErrorContains(t, err, "STORE_BACKEND")
}

func TestLoad_invalidValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"log level", "LOG_LEVEL", "loud"},
		{"body size not a number", "MAX_BODY_BYTES", "lots"},
		{"body size zero", "MAX_BODY_BYTES", "0"},
		{"shutdown timeout", "SHUTDOWN_TIMEOUT", "soon"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			unsetAll(t)
			t.Setenv(tc.key, tc.value)

			_, err := config.Load()

			require.ErrorContains(t, err, tc.key)
		})
	}
}
