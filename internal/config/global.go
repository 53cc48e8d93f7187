// SPDX-License-Identifier: MPL-2.0

package config

import "sync"

var (
	mu     sync.Mutex
	cached *Config

	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	// configFileOverride is set by the --config flag to force a specific file.
	configFileOverride string
)

// Load reads the configuration, caching the result for subsequent Get calls.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	cfg, err := load()
	if err != nil {
		return nil, err
	}
	cached = cfg
	return cfg, nil
}

// Get returns the cached configuration, loading it on first use.
// Load errors fall back to defaults so read-only callers always get a config.
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	if cached == nil {
		cfg, err := load()
		if err != nil {
			return DefaultConfig()
		}
		cached = cfg
	}
	return cached
}

// SetConfigFilePathOverride sets a custom config file path (--config flag).
func SetConfigFilePathOverride(path string) {
	mu.Lock()
	defer mu.Unlock()
	configFileOverride = path
	cached = nil
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	mu.Lock()
	defer mu.Unlock()
	configDirOverride = dir
	cached = nil
}

// Reset clears overrides and the cached config. Call from test cleanup to
// restore defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	configDirOverride = ""
	configFileOverride = ""
	cached = nil
}
