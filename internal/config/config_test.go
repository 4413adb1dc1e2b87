package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfig, EnvHost, EnvPort, EnvDataDir, EnvLogLevel, EnvOrigins} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 4, cfg.Server.Workers)
	assert.Equal(t, 200, cfg.Server.MaxBatch)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins)
	assert.Equal(t, "fear", cfg.Examples.Masculine)
	assert.Equal(t, "bean", cfg.Examples.Feminine)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), "")
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[server]
port = 9090
workers = 8

[data]
dir = "/srv/irish"

[logging]
level = "debug"
format = "json"

[cors]
origins = ["https://example.ie"]

[examples]
masculine = "cat"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, 8, cfg.Server.Workers)
	assert.Equal(t, 200, cfg.Server.MaxBatch)
	assert.Equal(t, "/srv/irish", cfg.Data.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"https://example.ie"}, cfg.CORS.Origins)
	assert.Equal(t, "cat", cfg.Examples.Masculine)
	assert.Equal(t, "bean", cfg.Examples.Feminine)
}

func TestLoadLaterFileWins(t *testing.T) {
	clearEnv(t)
	first := writeConfig(t, "[server]\nport = 9000\nhost = \"127.0.0.1\"\n")
	second := writeConfig(t, "[server]\nport = 9001\n")

	cfg, err := Load(first, second)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9001", cfg.Server.Addr())
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHost, "localhost")
	t.Setenv(EnvPort, "7000")
	t.Setenv(EnvDataDir, "/tmp/data")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvOrigins, "https://a.ie, https://b.ie,")

	cfg, err := Load(writeConfig(t, "[server]\nport = 9000\n"))
	require.NoError(t, err)
	assert.Equal(t, "localhost:7000", cfg.Server.Addr())
	assert.Equal(t, "/tmp/data", cfg.Data.Dir)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, []string{"https://a.ie", "https://b.ie"}, cfg.CORS.Origins)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfig, writeConfig(t, "[data]\ndir = \"lexicon\"\n"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "lexicon", cfg.Data.Dir)
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		content string
	}{
		{"bad port", "[server]\nport = 70000\n"},
		{"empty data dir", "[data]\ndir = \"\"\n"},
		{"bad format", "[logging]\nformat = \"xml\"\n"},
		{"bad toml", "[server\nport = 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadClampsWorkers(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, "[server]\nworkers = 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Server.Workers)
}
