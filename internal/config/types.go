// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ModuleModeOff means module features have never been enabled. The
	// one-time initialization upgrade turns this into ModuleModeOn.
	ModuleModeOff ModuleMode = "off"
	// ModuleModeAuto defers to the detected toolchain release: the mode is
	// upgraded to on only when `go version` reports an enabling release.
	ModuleModeAuto ModuleMode = "auto"
	// ModuleModeOn means module features are enabled; initialization leaves
	// it untouched.
	ModuleModeOn ModuleMode = "on"
)

var (
	// ErrInvalidModuleMode is the sentinel error wrapped by InvalidModuleModeError.
	ErrInvalidModuleMode = errors.New("invalid module mode")

	// ErrModulesDisabled is returned by enablement checks when module
	// features are not active. The operation aborts with no partial effects.
	ErrModulesDisabled = errors.New("module support is disabled")
)

type (
	// ModuleMode is the three-state module enablement flag persisted in the
	// config file (off, auto, on).
	ModuleMode string

	// InvalidModuleModeError is returned when a ModuleMode value is not one
	// of the recognized states.
	InvalidModuleModeError struct {
		Value ModuleMode
	}

	// Config is the persisted modpilot configuration.
	Config struct {
		// ToolCommand invokes the Go toolchain. It is split with shell field
		// rules, so wrappers like "env GOFLAGS=-mod=mod go" work.
		ToolCommand string `mapstructure:"tool_command" toml:"tool_command"`
		// ModuleMode is the module enablement flag (see ModuleMode).
		ModuleMode ModuleMode `mapstructure:"module_mode" toml:"module_mode"`
		// EnablingReleases are substrings of `go version` output that flip
		// ModuleModeAuto to on during initialization.
		EnablingReleases []string `mapstructure:"enabling_releases" toml:"enabling_releases"`
		// Theme selects the TUI prompt theme.
		Theme string `mapstructure:"theme" toml:"theme"`
		// Accessible forces accessible (non-fullscreen) prompt rendering.
		Accessible bool `mapstructure:"accessible" toml:"accessible"`
	}
)

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() Config {
	return Config{
		ToolCommand:      "go",
		ModuleMode:       ModuleModeAuto,
		EnablingReleases: []string{"go1.11"},
		Theme:            "charm",
	}
}

// Error implements the error interface.
func (e *InvalidModuleModeError) Error() string {
	return fmt.Sprintf("invalid module mode %q (valid: off, auto, on)", e.Value)
}

// Unwrap returns ErrInvalidModuleMode so callers can use errors.Is.
func (e *InvalidModuleModeError) Unwrap() error { return ErrInvalidModuleMode }

// IsValid returns whether the ModuleMode is a recognized state, and a list
// of validation errors if it is not.
func (m ModuleMode) IsValid() (bool, []error) {
	switch m {
	case ModuleModeOff, ModuleModeAuto, ModuleModeOn:
		return true, nil
	default:
		return false, []error{&InvalidModuleModeError{Value: m}}
	}
}

// String returns the string representation of the ModuleMode.
func (m ModuleMode) String() string { return string(m) }

// ParseModuleMode normalizes and validates a module mode string.
func ParseModuleMode(s string) (ModuleMode, error) {
	m := ModuleMode(strings.ToLower(strings.TrimSpace(s)))
	if ok, errs := m.IsValid(); !ok {
		return "", errs[0]
	}
	return m, nil
}

// UpgradeModuleMode applies the one-time initialization transition: off is
// force-enabled, auto enables only when toolVersion reports one of the
// enabling releases, and on is left alone. It returns the resulting mode and
// whether it changed.
func UpgradeModuleMode(mode ModuleMode, toolVersion string, enabling []string) (ModuleMode, bool) {
	switch mode {
	case ModuleModeOff:
		return ModuleModeOn, true
	case ModuleModeAuto:
		for _, release := range enabling {
			if release != "" && strings.Contains(toolVersion, release) {
				return ModuleModeOn, true
			}
		}
		return ModuleModeAuto, false
	default:
		return mode, false
	}
}

// Validate checks the whole config for consistency.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ToolCommand) == "" {
		return errors.New("tool_command must not be empty")
	}
	if ok, errs := c.ModuleMode.IsValid(); !ok {
		return errs[0]
	}
	return nil
}
