// SPDX-License-Identifier: EPL-2.0

package tui

import (
	"github.com/charmbracelet/huh/spinner"
)

// Spin runs action behind an animated spinner. In accessible mode (pipes,
// screen readers) the action runs directly with no animation, since the
// spinner would garble non-terminal output.
func Spin(title string, cfg Config, action func()) error {
	if cfg.Accessible {
		action()
		return nil
	}
	return spinner.New().
		Title(title).
		Action(action).
		Run()
}
