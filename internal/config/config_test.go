package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "HTTP_PORT", "HEALTH_PORT", "CORS_ORIGINS", "ROUTE_TABLE", "RANDOM_SEED", "DATABASE_DSN", "DATABASE_DSN_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.HTTPPort)
	assert.Equal(t, 8080, cfg.HealthPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.True(t, cfg.AllowsAllOrigins())
	assert.Equal(t, RouteTableBoth, cfg.RouteTable)
	assert.True(t, cfg.MountsPrimary())
	assert.True(t, cfg.MountsLegacy())
	assert.Zero(t, cfg.RandomSeed)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 5*time.Minute, cfg.DatabaseMaxIdleTime)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9001")
	t.Setenv("CORS_ORIGINS", " https://a.example , https://b.example,, ")
	t.Setenv("ROUTE_TABLE", "Legacy")
	t.Setenv("RANDOM_SEED", "1234567890123")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.HTTPPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.AllowsAllOrigins())
	assert.Equal(t, RouteTableLegacy, cfg.RouteTable)
	assert.False(t, cfg.MountsPrimary())
	assert.Equal(t, int64(1234567890123), cfg.RandomSeed)
}

func TestLoadDSNFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dsn")
	require.NoError(t, os.WriteFile(path, []byte("user:pass@tcp(db:3306)/flowintel\n"), 0o600))
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("DATABASE_DSN_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "user:pass@tcp(db:3306)/flowintel", cfg.DatabaseDSN)
}

func TestLoadMissingDSNFile(t *testing.T) {
	t.Setenv("DATABASE_DSN_FILE", filepath.Join(t.TempDir(), "missing"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		return &Config{
			LogLevel:        "info",
			HTTPPort:        8001,
			HealthPort:      8080,
			CORSOrigins:     []string{"*"},
			RouteTable:      RouteTableBoth,
			ShutdownTimeout: time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.HTTPPort = 0 }, wantErr: "HTTP_PORT"},
		{name: "port too large", mutate: func(c *Config) { c.HealthPort = 70000 }, wantErr: "HEALTH_PORT"},
		{name: "same ports", mutate: func(c *Config) { c.HealthPort = c.HTTPPort }, wantErr: "must differ"},
		{name: "bad route table", mutate: func(c *Config) { c.RouteTable = "v2" }, wantErr: "ROUTE_TABLE"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "LOG_LEVEL"},
		{name: "no origins", mutate: func(c *Config) { c.CORSOrigins = nil }, wantErr: "CORS_ORIGINS"},
		{name: "origin without scheme", mutate: func(c *Config) { c.CORSOrigins = []string{"example.com"} }, wantErr: "CORS_ORIGINS"},
		{name: "dsn without conns", mutate: func(c *Config) { c.DatabaseDSN = "x"; c.DatabaseMaxConns = 0 }, wantErr: "DATABASE_MAX_CONNS"},
		{name: "no shutdown budget", mutate: func(c *Config) { c.ShutdownTimeout = 0 }, wantErr: "SHUTDOWN_TIMEOUT_SEC"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := valid()
			tc.mutate(c)
			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
