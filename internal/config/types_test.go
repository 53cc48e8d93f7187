// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorSchemeIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     ColorScheme
		wantValid bool
	}{
		{name: "auto is valid", value: ColorSchemeAuto, wantValid: true},
		{name: "dark is valid", value: ColorSchemeDark, wantValid: true},
		{name: "light is valid", value: ColorSchemeLight, wantValid: true},
		{name: "empty is invalid", value: "", wantValid: false},
		{name: "unknown is invalid", value: "solarized", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			isValid, errs := tt.value.IsValid()
			if isValid != tt.wantValid {
				t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.value, isValid, tt.wantValid)
			}
			if !tt.wantValid {
				if len(errs) == 0 {
					t.Fatal("IsValid() returned no errors for invalid value")
				}
				if !errors.Is(errs[0], ErrInvalidColorScheme) {
					t.Errorf("error does not wrap ErrInvalidColorScheme: %v", errs[0])
				}
			}
		})
	}
}

func TestServerConfigIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		addr      string
		wantValid bool
	}{
		{name: "empty uses Django default", addr: "", wantValid: true},
		{name: "host and port", addr: "127.0.0.1:8000", wantValid: true},
		{name: "bare port", addr: "8000", wantValid: true},
		{name: "all interfaces", addr: "0.0.0.0:8000", wantValid: true},
		{name: "embedded space is invalid", addr: "127.0.0.1 8000", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			isValid, errs := ServerConfig{Addr: tt.addr}.IsValid()
			if isValid != tt.wantValid {
				t.Errorf("ServerConfig{%q}.IsValid() = %v, want %v", tt.addr, isValid, tt.wantValid)
			}
			if !tt.wantValid && !errors.Is(errs[0], ErrInvalidServerAddr) {
				t.Errorf("error does not wrap ErrInvalidServerAddr: %v", errs[0])
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}

	bad := DefaultConfig()
	bad.ManagePy = "  "
	bad.UI.ColorScheme = "neon"
	err := bad.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig: %v", err)
	}
	if !errors.Is(err, ErrInvalidColorScheme) {
		t.Errorf("aggregate should wrap ErrInvalidColorScheme: %v", err)
	}
}
