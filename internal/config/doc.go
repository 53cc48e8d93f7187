// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as the file format.
//
// Configuration is loaded from ~/.config/djrun/config.toml (or XDG equivalent on Linux,
// ~/Library/Application Support/djrun/config.toml on macOS, %APPDATA%\djrun\config.toml
// on Windows), with DJRUN_* environment variables layered on top. The package provides
// type-safe configuration access covering interpreter selection, project file locations,
// dev server address, and UI settings.
package config
