// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

// newTidyCommand creates the `modpilot tidy` command.
func newTidyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tidy",
		Short: "Run 'go mod tidy' on the current manifest",
		Long: `Add missing and remove unused module requirements.

This delegates directly to 'go mod tidy'; no target resolution is needed.`,
		Args: cobra.NoArgs,
		RunE: runTidy,
	}
}

func runTidy(cmd *cobra.Command, _ []string) error {
	app, err := newApp(cmd.Context(), Dependencies{})
	if err != nil {
		return err
	}
	if err := app.ensureEnabled(cmd.Context()); err != nil {
		return err
	}

	out, err := app.spin(cmd.Context(), "Tidying module requirements...", app.Client.Tidy)
	if err != nil {
		return failTool(err)
	}
	app.report(out)
	return nil
}
