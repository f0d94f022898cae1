// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"

	"modpilot-cli/internal/issue"
	"modpilot-cli/pkg/modref"
)

// errNoModules is returned when the resolved module list has no dependency
// entries to pick from.
var errNoModules = errors.New("no modules resolved in the current manifest")

// resolveTarget determines the module a workflow command acts on, in order
// of preference: an explicit argument, a match on the --line text, then an
// interactive pick over the full resolved module list. The module-mode
// precondition is checked before anything else.
func (a *App) resolveTarget(ctx context.Context, args []string) (modref.ModulePath, error) {
	if err := a.ensureEnabled(ctx); err != nil {
		return "", err
	}

	if len(args) > 0 {
		return modref.ModulePath(args[0]), nil
	}

	if a.Line != "" {
		if mod, ok := modref.MatchModule(a.Line); ok {
			return mod, nil
		}
	}

	entries, err := a.Client.ListAll(ctx)
	if err != nil {
		return "", failTool(err)
	}
	// Drop the main module line: it is not an actionable dependency.
	if len(entries) > 0 && entries[0].Version == "" {
		entries = entries[1:]
	}
	if len(entries) == 0 {
		return "", newServiceError(errNoModules, issue.NoModuleContextId)
	}

	return a.Prompt.ChooseModule("Select a module", entries)
}
