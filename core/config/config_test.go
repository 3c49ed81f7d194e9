package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "countries", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 60, cfg.Sources.TimeoutSeconds)
	assert.Equal(t, uint32(5), cfg.Sources.BreakerFailures)
	assert.Contains(t, cfg.Sources.CountriesURL, "restcountries.com")
	assert.Equal(t, "https://open.er-api.com/v6/latest/USD", cfg.Sources.RatesURL)
	assert.Equal(t, "minio", cfg.Artifact.Driver)
	assert.Equal(t, "cache/summary.png", cfg.Artifact.ObjectName)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SOURCES_TIMEOUT_SECONDS", "15")
	t.Setenv("ARTIFACT_DRIVER", "filesystem")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 15, cfg.Sources.TimeoutSeconds)
	assert.Equal(t, "filesystem", cfg.Artifact.Driver)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nSTORAGE_BUCKET=artifacts\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("STORAGE_BUCKET")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "artifacts", cfg.Storage.Bucket)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"Environment", "SERVER_ENVIRONMENT", "staging"},
		{"Database driver", "DATABASE_DRIVER", "oracle"},
		{"Artifact driver", "ARTIFACT_DRIVER", "ftp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig(t.TempDir())
			assert.Error(t, err)
		})
	}
}
