// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// newGetCommand creates the `modpilot get` command.
func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [module]",
		Short: "Switch a module to a specific released version",
		Long: `Pick one of a module's tagged releases and switch to it.

The available versions come from 'go list -m -versions'. A module with no
tagged releases is reported as having no other versions available; that is
an informational outcome, not an error.

Examples:
  modpilot get github.com/lib/pq
  modpilot get --line "github.com/lib/pq v1.2.3"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGet,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context(), Dependencies{})
	if err != nil {
		return err
	}
	return app.getVersion(cmd.Context(), args)
}

// getVersion resolves a target, lists its versions, and applies the chosen
// one.
func (a *App) getVersion(ctx context.Context, args []string) error {
	mod, err := a.resolveTarget(ctx, args)
	if err != nil {
		return err
	}

	versions, err := a.Client.Versions(ctx, mod)
	if err != nil {
		return failTool(err)
	}
	if len(versions) == 0 {
		a.info(fmt.Sprintf("%s has no other versions available", mod))
		return nil
	}

	chosen, err := a.Prompt.ChooseVersion(fmt.Sprintf("Select a version of %s", mod), versions)
	if err != nil {
		return err
	}

	out, err := a.Client.Get(ctx, mod, chosen.String())
	if err != nil {
		return failTool(err)
	}
	a.report(out)
	return nil
}
