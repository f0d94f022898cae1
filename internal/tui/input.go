// SPDX-License-Identifier: EPL-2.0

package tui

import (
	"github.com/charmbracelet/huh"
)

// InputOptions configures the Input component.
type InputOptions struct {
	// Title is the title/prompt displayed above the input.
	Title string
	// Description provides additional context below the title.
	Description string
	// Placeholder is the placeholder text shown when input is empty.
	Placeholder string
	// Value is the initial value of the input.
	Value string
	// Validate rejects invalid input before the prompt closes (nil for none).
	Validate func(string) error
	// Config holds common TUI configuration.
	Config Config
}

// Input presents a free-text prompt and returns the entered value.
func Input(opts InputOptions) (string, error) {
	result := opts.Value

	input := huh.NewInput().
		Title(opts.Title).
		Description(opts.Description).
		Placeholder(opts.Placeholder).
		Value(&result)

	if opts.Validate != nil {
		input = input.Validate(opts.Validate)
	}

	form := huh.NewForm(huh.NewGroup(input)).
		WithTheme(getHuhTheme(opts.Config.Theme)).
		WithAccessible(opts.Config.Accessible)

	if err := form.Run(); err != nil {
		return "", err
	}

	return result, nil
}
