// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// newWhyCommand creates the `modpilot why` command.
func newWhyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "why [module]",
		Short: "Explain why a module is needed",
		Long: `Show the shortest import chain that pulls in a module, as reported
by 'go mod why'.

Examples:
  modpilot why github.com/lib/pq
  modpilot why --line "github.com/lib/pq v1.2.3"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWhy,
	}
}

func runWhy(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context(), Dependencies{})
	if err != nil {
		return err
	}

	mod, err := app.resolveTarget(cmd.Context(), args)
	if err != nil {
		return err
	}

	out, err := app.spin(cmd.Context(), fmt.Sprintf("Tracing %s...", mod), func(ctx context.Context) (string, error) {
		return app.Client.Why(ctx, mod)
	})
	if err != nil {
		return failTool(err)
	}
	app.report(out)
	return nil
}
