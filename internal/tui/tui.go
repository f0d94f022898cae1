// SPDX-License-Identifier: EPL-2.0

// Package tui provides the interactive prompt primitives the CLI layer
// needs: choose-one, confirm, and free-text input. It wraps
// charmbracelet/huh so prompts degrade gracefully to accessible mode when
// stdin is not a terminal.
package tui

import (
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Theme represents the visual theme for TUI components.
type Theme string

const (
	// ThemeDefault uses the default huh theme.
	ThemeDefault Theme = "default"
	// ThemeCharm uses the Charm theme.
	ThemeCharm Theme = "charm"
	// ThemeDracula uses the Dracula theme.
	ThemeDracula Theme = "dracula"
	// ThemeCatppuccin uses the Catppuccin theme.
	ThemeCatppuccin Theme = "catppuccin"
	// ThemeBase16 uses the Base16 theme.
	ThemeBase16 Theme = "base16"
)

// Config holds common configuration for TUI components.
type Config struct {
	// Theme specifies the visual theme to use.
	Theme Theme
	// Accessible enables accessible mode for screen readers and pipes.
	Accessible bool
}

// DefaultConfig returns the default configuration for TUI components.
// Accessible mode is enabled automatically when stdin is not a terminal
// (command substitution, pipes) or the ACCESSIBLE environment variable is
// set.
func DefaultConfig() Config {
	accessible := !isInputTerminal() || os.Getenv("ACCESSIBLE") != ""
	return Config{
		Theme:      ThemeCharm,
		Accessible: accessible,
	}
}

// isInputTerminal returns true if stdin is connected to a terminal.
// Returns false when running inside command substitution ($()) or pipes.
func isInputTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// getHuhTheme converts a Theme to a huh.Theme.
func getHuhTheme(t Theme) *huh.Theme {
	switch t {
	case ThemeCharm:
		return huh.ThemeCharm()
	case ThemeDracula:
		return huh.ThemeDracula()
	case ThemeCatppuccin:
		return huh.ThemeCatppuccin()
	case ThemeBase16:
		return huh.ThemeBase16()
	default:
		return huh.ThemeBase()
	}
}

// ParseTheme maps a config string onto a known Theme, defaulting to charm.
func ParseTheme(s string) Theme {
	switch Theme(s) {
	case ThemeDefault, ThemeCharm, ThemeDracula, ThemeCatppuccin, ThemeBase16:
		return Theme(s)
	default:
		return ThemeCharm
	}
}
