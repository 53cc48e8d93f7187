// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"djrun-cli/internal/issue"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "djrun"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix is the prefix for environment variable overrides (DJRUN_*).
	EnvPrefix = "DJRUN"
)

// ConfigDir returns the djrun configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// ConfigFilePath returns the resolved path of the config file, honoring the
// --config flag override. The file may not exist yet.
func ConfigFilePath() (string, error) {
	if configFileOverride != "" {
		return configFileOverride, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// load reads configuration from the resolved config file (if present),
// layers DJRUN_* environment variables on top, validates, and returns the
// result. A missing config file is not an error; defaults apply.
func load() (*Config, error) {
	v := viper.New()
	v.SetConfigType(ConfigFileExt)

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("python", defaults.Python)
	v.SetDefault("manage_py", defaults.ManagePy)
	v.SetDefault("requirements", defaults.Requirements)
	v.SetDefault("venv_dir", defaults.VenvDir)
	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	// Environment overrides: DJRUN_PYTHON, DJRUN_SERVER_ADDR, DJRUN_UI_VERBOSE, ...
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := ConfigFilePath()
	if err != nil {
		return nil, err
	}

	if fileExists(path) {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid TOML syntax").
				WithSuggestion("Run 'djrun config show' to see the effective configuration").
				Wrap(err).
				BuildError()
		}
	} else if configFileOverride != "" {
		// An explicitly requested config file must exist.
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(configFileOverride).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Check that the file exists and is readable").
			Wrap(fmt.Errorf("config file not found: %s", configFileOverride)).
			BuildError()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Fix the listed values and retry").
			Wrap(err).
			BuildError()
	}

	return &cfg, nil
}

// EnsureConfigDir creates the config directory if it does not exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// Save writes the config to the resolved config file location as TOML.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := ConfigFilePath()
	if err != nil {
		return err
	}

	data, err := GenerateTOML(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateTOML renders a Config as TOML, suitable for 'config show' output
// and for seeding a default config file.
func GenerateTOML(cfg *Config) ([]byte, error) {
	// go-toml honors struct field names; map to the file's key style first.
	doc := map[string]any{
		"python":       cfg.Python,
		"manage_py":    cfg.ManagePy,
		"requirements": cfg.Requirements,
		"venv_dir":     cfg.VenvDir,
		"server": map[string]any{
			"addr": cfg.Server.Addr,
		},
		"ui": map[string]any{
			"color_scheme": string(cfg.UI.ColorScheme),
			"verbose":      cfg.UI.Verbose,
		},
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render config as TOML: %w", err)
	}
	return data, nil
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
