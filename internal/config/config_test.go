package config_test

import (
	"grader/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, "index.html", cfg.HTTP.HTMLFile)
	require.Equal(t, ":8080", cfg.ListenAddr())
	require.Empty(t, cfg.HTTP.AdminAddr)
	require.Zero(t, cfg.Fetch.Timeout)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_PortFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("HTTP_HOST", "127.0.0.1")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, 9999, cfg.HTTP.Port)
	require.Equal(t, "127.0.0.1:9999", cfg.ListenAddr())
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")
	_, err := config.Load("")
	require.ErrorContains(t, err, "invalid port")

	t.Setenv("PORT", "http")
	_, err = config.Load("")
	require.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
http:
  port: 3000
  htmlFile: site/index.html
fetch:
  timeout: 5s
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, 3000, cfg.HTTP.Port)
	require.Equal(t, "site/index.html", cfg.HTTP.HTMLFile)
	require.Equal(t, 5*time.Second, cfg.Fetch.Timeout)

	// environment wins over the file
	t.Setenv("PORT", "4000")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 4000, cfg.HTTP.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}
