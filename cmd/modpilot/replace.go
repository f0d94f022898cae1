// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// newReplaceCommand creates the `modpilot replace` command.
func newReplaceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "replace [module]",
		Short: "Replace a module with a local directory",
		Long: `Add a replace directive pointing a module at a local checkout.

The entered path is relativized against the working directory before being
handed to 'go mod edit -replace', so the manifest stays portable across
machines that share the same layout.

Examples:
  modpilot replace github.com/lib/pq
  modpilot replace --line "github.com/lib/pq v1.2.3"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReplace,
	}
}

func runReplace(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context(), Dependencies{})
	if err != nil {
		return err
	}
	return app.replaceWithLocal(cmd.Context(), args)
}

// replaceWithLocal resolves a target, prompts for a local path, and adds the
// replace directive with the path made relative to the working directory.
func (a *App) replaceWithLocal(ctx context.Context, args []string) error {
	mod, err := a.resolveTarget(ctx, args)
	if err != nil {
		return err
	}

	path, err := a.Prompt.InputPath(
		fmt.Sprintf("Local path for %s", mod),
		"../"+filepath.Base(mod.String()),
	)
	if err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("replacement path must not be empty")
	}

	rel, err := a.relativizePath(path)
	if err != nil {
		return err
	}

	out, err := a.Client.Replace(ctx, mod, rel)
	if err != nil {
		return failTool(err)
	}
	a.report(out)
	return nil
}

// relativizePath turns path into a form relative to the working directory.
// Already-relative paths pass through untouched.
func (a *App) relativizePath(path string) (string, error) {
	if !filepath.IsAbs(path) {
		return path, nil
	}
	rel, err := filepath.Rel(a.WorkDir, path)
	if err != nil {
		return "", fmt.Errorf("failed to relativize %q against %q: %w", path, a.WorkDir, err)
	}
	return rel, nil
}
