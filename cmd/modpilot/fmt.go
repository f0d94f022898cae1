// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

// newFmtCommand creates the `modpilot fmt` command.
func newFmtCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt",
		Short: "Reformat the manifest with 'go mod edit -fmt'",
		Long: `Rewrite go.mod into the toolchain's canonical formatting.

This is the same operation 'modpilot watch' runs automatically on save.`,
		Args: cobra.NoArgs,
		RunE: runFmt,
	}
}

func runFmt(cmd *cobra.Command, _ []string) error {
	app, err := newApp(cmd.Context(), Dependencies{})
	if err != nil {
		return err
	}
	if err := app.ensureEnabled(cmd.Context()); err != nil {
		return err
	}

	out, err := app.Client.Fmt(cmd.Context())
	if err != nil {
		return failTool(err)
	}
	app.report(out)
	return nil
}
