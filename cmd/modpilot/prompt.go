// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"modpilot-cli/internal/config"
	"modpilot-cli/internal/tui"
	"modpilot-cli/pkg/modref"
)

// Prompter is the interactive seam between workflow commands and the
// terminal. The four primitives here are all a host has to provide:
// select-one-from-list, confirm-yes-no, read-free-text, and (via App.report)
// display-message.
type Prompter interface {
	// ChooseModule presents a single-select over resolved modules.
	ChooseModule(title string, entries []modref.Entry) (modref.ModulePath, error)
	// ChooseVersion presents a single-select over available versions.
	ChooseVersion(title string, versions []modref.Version) (modref.Version, error)
	// Confirm asks a yes/no question; declining is not an error.
	Confirm(title, description string) (bool, error)
	// InputPath reads a free-text filesystem path.
	InputPath(title, placeholder string) (string, error)
	// Spin runs action behind a progress spinner while a slow toolchain
	// invocation is in flight.
	Spin(title string, action func()) error
}

// tuiPrompter renders prompts with the internal/tui huh components.
type tuiPrompter struct {
	cfg tui.Config
}

var _ Prompter = (*tuiPrompter)(nil)

func newTuiPrompter(cfg config.Config) *tuiPrompter {
	tc := tui.DefaultConfig()
	tc.Theme = tui.ParseTheme(cfg.Theme)
	if cfg.Accessible {
		tc.Accessible = true
	}
	return &tuiPrompter{cfg: tc}
}

// ChooseModule implements Prompter. Options display "path version" but
// resolve to the bare module path.
func (p *tuiPrompter) ChooseModule(title string, entries []modref.Entry) (modref.ModulePath, error) {
	opts := make([]tui.Option[modref.ModulePath], len(entries))
	for i, e := range entries {
		label := e.Path.String()
		if e.Version != "" {
			label = fmt.Sprintf("%s %s", e.Path, e.Version)
		}
		opts[i] = tui.Option[modref.ModulePath]{Title: label, Value: e.Path}
	}
	return tui.Choose(tui.ChooseOptions[modref.ModulePath]{
		Title:   title,
		Options: opts,
		Config:  p.cfg,
	})
}

// ChooseVersion implements Prompter.
func (p *tuiPrompter) ChooseVersion(title string, versions []modref.Version) (modref.Version, error) {
	opts := make([]tui.Option[modref.Version], len(versions))
	for i, v := range versions {
		opts[i] = tui.Option[modref.Version]{Title: v.String(), Value: v}
	}
	return tui.Choose(tui.ChooseOptions[modref.Version]{
		Title:   title,
		Options: opts,
		Config:  p.cfg,
	})
}

// Confirm implements Prompter.
func (p *tuiPrompter) Confirm(title, description string) (bool, error) {
	return tui.Confirm(tui.ConfirmOptions{
		Title:       title,
		Description: description,
		Config:      p.cfg,
	})
}

// InputPath implements Prompter.
func (p *tuiPrompter) InputPath(title, placeholder string) (string, error) {
	return tui.Input(tui.InputOptions{
		Title:       title,
		Placeholder: placeholder,
		Config:      p.cfg,
	})
}

// Spin implements Prompter.
func (p *tuiPrompter) Spin(title string, action func()) error {
	return tui.Spin(title, p.cfg, action)
}
