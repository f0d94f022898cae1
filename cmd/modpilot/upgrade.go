// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// newUpgradeCommand creates the `modpilot upgrade` command.
func newUpgradeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade [module]",
		Short: "Upgrade one module, or everything with --all",
		Long: `Upgrade a module to the newest version the toolchain reports.

Without --all, the target module is resolved from the argument, the --line
text, or an interactive picker, and the upgrade runs only after you confirm
the candidate version. When the module is already at the latest version,
nothing is invoked.

With --all, the entire dependency graph is upgraded ('go get -u -m all') and
the toolchain output streams live, since a full-graph upgrade can be slow.

Examples:
  modpilot upgrade github.com/lib/pq
  modpilot upgrade --line "require github.com/lib/pq v1.2.3"
  modpilot upgrade --all
  modpilot upgrade --all --patch`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpgrade,
	}

	cmd.Flags().Bool("all", false, "upgrade every module in the dependency graph")
	cmd.Flags().Bool("patch", false, "with --all, restrict upgrades to patch releases")

	return cmd
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	patch, _ := cmd.Flags().GetBool("patch")

	app, err := newApp(cmd.Context(), Dependencies{})
	if err != nil {
		return err
	}

	if all {
		return app.upgradeAll(cmd.Context(), patch)
	}
	return app.upgradeOne(cmd.Context(), args)
}

// upgradeOne resolves a target, queries its upgrade candidate, and applies
// the upgrade after confirmation. Declining is an explicit no-op.
func (a *App) upgradeOne(ctx context.Context, args []string) error {
	mod, err := a.resolveTarget(ctx, args)
	if err != nil {
		return err
	}

	candidate, ok, err := a.Client.UpgradeCandidate(ctx, mod)
	if err != nil {
		return failTool(err)
	}
	if !ok {
		a.info(fmt.Sprintf("%s is already at the latest version", mod))
		return nil
	}

	confirmed, err := a.Prompt.Confirm(
		fmt.Sprintf("Upgrade %s to %s?", mod, candidate),
		"The manifest and lock file will be updated by the toolchain.",
	)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	out, err := a.Client.Get(ctx, mod, candidate.String())
	if err != nil {
		return failTool(err)
	}
	a.report(out)
	return nil
}

// upgradeAll streams a full or patch-only graph upgrade. The module-mode
// precondition still applies even though no target is resolved.
func (a *App) upgradeAll(ctx context.Context, patch bool) error {
	if err := a.ensureEnabled(ctx); err != nil {
		return err
	}
	if err := a.Client.UpgradeAll(ctx, patch, a.stdout); err != nil {
		return failTool(err)
	}
	return nil
}
