package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	repo := NewConfigRepository()

	t.Run("yaml", func(t *testing.T) {
		path := writeTemp(t, "netops.yaml", "upstream_url: https://nms.example.com\ncurrency: USD\nplazas:\n  - Monterrey\n  - CDMX\n")
		cfg, err := repo.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "https://nms.example.com", cfg.UpstreamURL)
		assert.Equal(t, "USD", cfg.Currency)
		assert.Equal(t, []string{"Monterrey", "CDMX"}, cfg.Plazas)
	})

	t.Run("toml", func(t *testing.T) {
		path := writeTemp(t, "netops.toml", "upstream_url = \"https://nms.example.com\"\nlisten_addr = \":9090\"\n")
		cfg, err := repo.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.ListenAddr)
	})

	t.Run("json", func(t *testing.T) {
		path := writeTemp(t, "netops.json", `{"upstream_token":"abc123","period":"3m"}`)
		cfg, err := repo.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "abc123", cfg.UpstreamToken)
		assert.Equal(t, "3m", cfg.Period)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTemp(t, "netops.ini", "x=y")
		_, err := repo.LoadConfigFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestLoadDefault(t *testing.T) {
	repo := NewConfigRepository()

	t.Run("defaults without file", func(t *testing.T) {
		cfg, err := LoadDefault(repo, "")
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.ListenAddr)
		assert.Equal(t, "MXN", cfg.Currency)
		assert.Equal(t, "1m", cfg.Period)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeTemp(t, "netops.yaml", "upstream_url: https://file.example.com\n")
		t.Setenv("NETOPS_UPSTREAM_URL", "https://env.example.com")
		cfg, err := LoadDefault(repo, path)
		require.NoError(t, err)
		assert.Equal(t, "https://env.example.com", cfg.UpstreamURL)
	})
}
