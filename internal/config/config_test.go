package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"ADDR", "TLS_CERT", "TLS_KEY", "DATABASE_URL", "TOKEN_KEY", "RATE_LIMIT", "RATE_BURST", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8443", cfg.Addr)
	assert.False(t, cfg.TLS())
	assert.Equal(t, defaultDSN, cfg.DatabaseURL)
	assert.Equal(t, rate.Limit(1), cfg.RateLimit)
	assert.Equal(t, 3, cfg.RateBurst)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Error(t, cfg.RequireToken())
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	for _, k := range []string{"ADDR", "TOKEN_KEY", "LOG_LEVEL"} {
		require.NoError(t, os.Unsetenv(k))
	}
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ADDR=:9000\nTOKEN_KEY=secret\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, []byte("secret"), cfg.TokenKey)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.NoError(t, cfg.RequireToken())
}

func TestLoad_InvalidRate(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT", "fast")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestWithSSLMode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"postgres://u@h/db", "postgres://u@h/db?sslmode=require"},
		{"postgres://u@h/db?connect_timeout=5", "postgres://u@h/db?connect_timeout=5&sslmode=require"},
		{"user=u dbname=db", "user=u dbname=db sslmode=require"},
		{"user=u sslmode=disable", "user=u sslmode=disable"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, withSSLMode(tt.in))
	}
}
