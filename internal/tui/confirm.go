// SPDX-License-Identifier: EPL-2.0

package tui

import (
	"github.com/charmbracelet/huh"
)

// ConfirmOptions configures the Confirm component.
type ConfirmOptions struct {
	// Title is the question/prompt to display.
	Title string
	// Description provides additional context below the title.
	Description string
	// Affirmative is the text for the affirmative option (default: "Yes").
	Affirmative string
	// Negative is the text for the negative option (default: "No").
	Negative string
	// Default is the default value (true for yes, false for no).
	Default bool
	// Config holds common TUI configuration.
	Config Config
}

// Confirm presents a yes/no prompt and returns the answer. A declined
// prompt is not an error.
func Confirm(opts ConfirmOptions) (bool, error) {
	affirmative := opts.Affirmative
	if affirmative == "" {
		affirmative = "Yes"
	}
	negative := opts.Negative
	if negative == "" {
		negative = "No"
	}

	result := opts.Default
	confirm := huh.NewConfirm().
		Title(opts.Title).
		Description(opts.Description).
		Affirmative(affirmative).
		Negative(negative).
		Value(&result)

	form := huh.NewForm(huh.NewGroup(confirm)).
		WithTheme(getHuhTheme(opts.Config.Theme)).
		WithAccessible(opts.Config.Accessible)

	if err := form.Run(); err != nil {
		return false, err
	}

	return result, nil
}
