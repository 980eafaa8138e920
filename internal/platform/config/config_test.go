package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incubator/internal/platform/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadLayersFileDotenvAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.FileName), "api_url: https://file.example/api/\ntimeout: 5s\nlog_level: info\n")
	writeFile(t, filepath.Join(dir, ".env"), "INCUBATOR_TIMEOUT=7s\nINCUBATOR_TOKEN=dotenv-token\n")
	t.Setenv("INCUBATOR_API_URL", "")
	t.Setenv("INCUBATOR_TOKEN", "env-token")
	t.Setenv("INCUBATOR_TIMEOUT", "")
	t.Setenv("INCUBATOR_LOG_LEVEL", "")
	t.Setenv("INCUBATOR_METRICS_ADDR", "")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://file.example/api", cfg.APIBaseURL)
	assert.Equal(t, 7*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, filepath.Join(dir, "incubator.db"), cfg.DBPath)
}

func TestLoadDefaultsAndValidation(t *testing.T) {
	t.Setenv("INCUBATOR_API_URL", "")
	t.Setenv("INCUBATOR_TIMEOUT", "")
	t.Setenv("INCUBATOR_LOG_LEVEL", "")

	_, err := config.Load(t.TempDir())
	require.Error(t, err, "missing api url must fail")

	_, err = config.Load("")
	require.Error(t, err)

	t.Setenv("INCUBATOR_API_URL", "http://localhost:3000")
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTimeout, cfg.Timeout)
	assert.Equal(t, "warn", cfg.LogLevel)

	t.Setenv("INCUBATOR_TIMEOUT", "soon")
	_, err = config.Load(t.TempDir())
	require.Error(t, err)

	t.Setenv("INCUBATOR_TIMEOUT", "-1s")
	_, err = config.Load(t.TempDir())
	require.Error(t, err)
}
