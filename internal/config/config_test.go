package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes content to a config.toml in a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("reads all fields", func(t *testing.T) {
		path := writeConfig(t, `
token = "ghp_filetoken"
base_url = "https://ghe.example.com/api/v3/"
owner = "octocat"
repository = "hello-world"
backend = "cli"
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "ghp_filetoken", cfg.Token)
		assert.Equal(t, "https://ghe.example.com/api/v3/", cfg.BaseURL)
		assert.Equal(t, "octocat", cfg.Owner)
		assert.Equal(t, "hello-world", cfg.Repository)
		assert.Equal(t, BackendCLI, cfg.Backend)
	})

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")

		cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))

		require.NoError(t, err)
		assert.Equal(t, BackendSDK, cfg.Backend)
		assert.Empty(t, cfg.Token)
	})

	t.Run("environment token fallback", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "ghp_envtoken")

		path := writeConfig(t, `owner = "octocat"`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "ghp_envtoken", cfg.Token)
	})

	t.Run("file token wins over environment", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "ghp_envtoken")

		path := writeConfig(t, `token = "ghp_filetoken"`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "ghp_filetoken", cfg.Token)
	})

	t.Run("unknown backend is rejected", func(t *testing.T) {
		path := writeConfig(t, `backend = "graphql"`)

		_, err := Load(path)

		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})

	t.Run("malformed file is rejected", func(t *testing.T) {
		path := writeConfig(t, `token = [unclosed`)

		_, err := Load(path)

		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})
}
