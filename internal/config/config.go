package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	shellquote "github.com/kballard/go-shellquote"
)

// EnvRscript overrides the configured interpreter path when set.
const EnvRscript = "RKIT_RSCRIPT"

// Config holds the shared configuration for rrepo and rdev.
type Config struct {
	// Rscript is an explicit interpreter path. Empty means look up
	// "Rscript" on PATH at startup.
	Rscript string `toml:"rscript"`

	// RscriptArgs holds extra interpreter arguments as a single
	// shell-quoted string, e.g. `--vanilla --no-echo`.
	RscriptArgs string `toml:"rscript_args"`

	Repo RepoConfig `toml:"repo"`
}

// RepoConfig holds rrepo-specific settings.
type RepoConfig struct {
	// DefaultPath is used when no repository path argument is given.
	DefaultPath string `toml:"default_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Repo: RepoConfig{DefaultPath: "."},
	}
}

// DefaultPath returns the standard config file location
// (~/.config/rkit/config.toml or the platform equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rkit", "config.toml")
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. The RKIT_RSCRIPT environment variable overrides
// the configured interpreter path.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if env := os.Getenv(EnvRscript); env != "" {
		cfg.Rscript = env
	}

	if cfg.Repo.DefaultPath == "" {
		cfg.Repo.DefaultPath = "."
	}

	return cfg, nil
}

// ExtraArgs splits RscriptArgs into an argument vector using shell
// quoting rules.
func (c *Config) ExtraArgs() ([]string, error) {
	if c.RscriptArgs == "" {
		return nil, nil
	}
	args, err := shellquote.Split(c.RscriptArgs)
	if err != nil {
		return nil, fmt.Errorf("invalid rscript_args %q: %w", c.RscriptArgs, err)
	}
	return args, nil
}
