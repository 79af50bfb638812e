// Package config loads the prctl configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/jmgilman/go/errors"
)

// Backends supported by the config file.
const (
	BackendSDK = "sdk"
	BackendCLI = "cli"
)

// Config holds the settings for the prctl command.
type Config struct {
	// Token is the personal access token used by the sdk backend.
	// Falls back to the GITHUB_TOKEN environment variable when unset.
	Token string `toml:"token"`

	// BaseURL overrides the API root, for GitHub Enterprise installs.
	// Must end with a trailing slash when set. Only honored by the sdk
	// backend; the cli backend follows the gh CLI's own configuration.
	BaseURL string `toml:"base_url"`

	// Owner and Repository are defaults applied when the corresponding
	// flags are omitted.
	Owner      string `toml:"owner"`
	Repository string `toml:"repository"`

	// Backend selects the executor: "sdk" (default) or "cli".
	Backend string `toml:"backend"`
}

// DefaultPath returns the default location of the config file
// ($HOME/.config/prctl/config.toml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInvalidConfig, "failed to resolve home directory")
	}
	return filepath.Join(home, ".config", "prctl", "config.toml"), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error: defaults and the environment still
// apply, so prctl works with nothing but GITHUB_TOKEN set.
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	cfg := &Config{Backend: BackendSDK}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			wrapped := errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse config file")
			return nil, errors.WithContext(wrapped, "path", path)
		}
	} else if !os.IsNotExist(err) {
		wrapped := errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file")
		return nil, errors.WithContext(wrapped, "path", path)
	}

	if cfg.Token == "" {
		cfg.Token = os.Getenv("GITHUB_TOKEN")
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendSDK
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Backend != BackendSDK && c.Backend != BackendCLI {
		err := errors.Newf(errors.CodeInvalidConfig, "unknown backend %q (must be %q or %q)", c.Backend, BackendSDK, BackendCLI)
		return errors.WithContext(err, "backend", c.Backend)
	}
	return nil
}
