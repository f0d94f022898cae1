// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newListCommand creates the `modpilot list` command.
func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all resolved modules",
		Long: `Print every module in the resolved dependency graph with its
selected version, from 'go list -m all'.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	app, err := newApp(cmd.Context(), Dependencies{})
	if err != nil {
		return err
	}
	if err := app.ensureEnabled(cmd.Context()); err != nil {
		return err
	}

	entries, err := app.Client.ListAll(cmd.Context())
	if err != nil {
		return failTool(err)
	}

	for _, e := range entries {
		if e.Version == "" {
			fmt.Fprintln(app.stdout, TitleStyle.Render(e.Path.String()))
			continue
		}
		fmt.Fprintf(app.stdout, "%s %s\n", e.Path, HighlightStyle.Render(e.Version.String()))
	}
	return nil
}
