// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidServerAddr is the sentinel error wrapped by InvalidServerAddrError.
	ErrInvalidServerAddr = errors.New("invalid server address")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme selects the terminal color scheme used for styled output.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidServerAddrError is returned when the dev server address is malformed.
	// It wraps ErrInvalidServerAddr for errors.Is() compatibility.
	InvalidServerAddrError struct {
		Value string
	}

	// InvalidConfigError aggregates all validation failures for a Config.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		Errs []error
	}

	// ServerConfig holds dev server settings.
	ServerConfig struct {
		// Addr is the host:port the runserver command binds to.
		Addr string `mapstructure:"addr"`
	}

	// UIConfig holds user interface settings.
	UIConfig struct {
		// ColorScheme selects the color scheme (auto, dark, light).
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		// Verbose enables verbose output by default.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the root configuration for djrun.
	Config struct {
		// Python overrides interpreter discovery when set (absolute path or PATH name).
		Python string `mapstructure:"python"`
		// ManagePy is the management script filename searched for during project discovery.
		ManagePy string `mapstructure:"manage_py"`
		// Requirements is the requirements file installed by setup, relative to the project root.
		Requirements string `mapstructure:"requirements"`
		// VenvDir is the virtualenv directory created by setup, relative to the project root.
		VenvDir string `mapstructure:"venv_dir"`

		Server ServerConfig `mapstructure:"server"`
		UI     UIConfig     `mapstructure:"ui"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (must be one of: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme so callers can use errors.Is.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidServerAddrError) Error() string {
	return fmt.Sprintf("invalid server address %q (expected host:port or port)", e.Value)
}

// Unwrap returns ErrInvalidServerAddr so callers can use errors.Is.
func (e *InvalidServerAddrError) Unwrap() error { return ErrInvalidServerAddr }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidConfig plus every aggregated failure so callers
// can use errors.Is against either the aggregate or a specific cause.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.Errs...)
}

// IsValid returns whether the ColorScheme is one of the recognized values,
// and a list of validation errors if it is not.
func (s ColorScheme) IsValid() (bool, []error) {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: s}}
	}
}

// IsValid returns whether the server address is usable, and a list of
// validation errors if it is not. Django's runserver accepts a bare port,
// a host:port pair, or an empty value (its own default).
func (c ServerConfig) IsValid() (bool, []error) {
	addr := strings.TrimSpace(c.Addr)
	if addr == "" {
		return true, nil
	}
	if strings.Count(addr, " ") > 0 {
		return false, []error{&InvalidServerAddrError{Value: c.Addr}}
	}
	return true, nil
}

// Validate checks all config values and returns an InvalidConfigError
// aggregating every failure, or nil when the config is valid.
func (c *Config) Validate() error {
	var errs []error

	if ok, verrs := c.UI.ColorScheme.IsValid(); !ok {
		errs = append(errs, verrs...)
	}
	if ok, verrs := c.Server.IsValid(); !ok {
		errs = append(errs, verrs...)
	}
	if strings.TrimSpace(c.ManagePy) == "" {
		errs = append(errs, fmt.Errorf("manage_py must not be empty"))
	}
	if strings.TrimSpace(c.VenvDir) == "" {
		errs = append(errs, fmt.Errorf("venv_dir must not be empty"))
	}

	if len(errs) > 0 {
		return &InvalidConfigError{Errs: errs}
	}
	return nil
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		ManagePy:     "manage.py",
		Requirements: "requirements.txt",
		VenvDir:      ".venv",
		Server: ServerConfig{
			Addr: "127.0.0.1:8000",
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
