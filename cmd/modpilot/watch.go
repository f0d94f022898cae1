// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"modpilot-cli/internal/issue"
	"modpilot-cli/internal/watch"
)

// newWatchCommand creates the `modpilot watch` command.
func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [manifest]",
		Short: "Reformat the manifest on every save",
		Long: `Watch go.mod and run 'go mod edit -fmt' after each save.

Rapid successive writes (an editor saving through a temp file) coalesce into
a single reformat. Stop with Ctrl-C.

Examples:
  modpilot watch
  modpilot watch ./go.mod`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context(), Dependencies{})
	if err != nil {
		return err
	}
	if err := app.ensureEnabled(cmd.Context()); err != nil {
		return err
	}

	manifest := filepath.Join(app.WorkDir, "go.mod")
	if len(args) > 0 {
		manifest = args[0]
	}
	if _, err := os.Stat(manifest); err != nil {
		return newServiceError(fmt.Errorf("manifest %q not found: %w", manifest, err), issue.ManifestNotFoundId)
	}

	w, err := watch.New(watch.Config{
		BaseDir:  filepath.Dir(manifest),
		Patterns: []string{filepath.Base(manifest)},
		Stderr:   app.stderr,
		OnChange: func(ctx context.Context, _ []string) error {
			if _, err := app.Client.Fmt(ctx); err != nil {
				fmt.Fprintln(app.stderr, ErrorStyle.Render("reformat failed: ")+err.Error())
				return nil
			}
			fmt.Fprintln(app.stdout, SuccessStyle.Render("reformatted ")+manifest)
			return nil
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(app.stdout, SubtitleStyle.Render("watching ")+manifest)
	return w.Run(cmd.Context())
}
