// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"modpilot-cli/internal/config"
	"modpilot-cli/internal/issue"
	"modpilot-cli/pkg/gotool"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every Cobra command handler builds or receives
	// an App and delegates through its Client and Prompt seams, so tests can
	// swap in fakes for both.
	App struct {
		Config  config.Config
		Client  gotool.Client
		Prompt  Prompter
		WorkDir string
		// Line is manifest text supplied by the host (--line) that target
		// resolution matches before falling back to an interactive picker.
		Line   string
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by newApp.
	Dependencies struct {
		Client  gotool.Client
		Prompt  Prompter
		WorkDir string
		Stdout  io.Writer
		Stderr  io.Writer
	}
)

// newApp loads configuration, builds the toolchain client, and performs the
// one-time module-mode upgrade. It is called at the start of every command
// handler rather than in cobra initialization so that --config and --verbose
// have already been parsed.
func newApp(ctx context.Context, deps Dependencies) (*App, error) {
	cfg, err := config.Load(ctx, cfgFile)
	if err != nil {
		return nil, newServiceError(err, issue.ConfigLoadFailedId)
	}

	app := &App{
		Config:  cfg,
		Client:  deps.Client,
		Prompt:  deps.Prompt,
		WorkDir: deps.WorkDir,
		Line:    currentLine,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	if app.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		app.WorkDir = wd
	}
	if app.Client == nil {
		client, err := gotool.New(cfg.ToolCommand,
			gotool.WithDir(app.WorkDir),
			gotool.WithLogger(newLogger()),
		)
		if err != nil {
			return nil, newServiceError(err, issue.ToolchainMissingId)
		}
		app.Client = client
	}
	if app.Prompt == nil {
		app.Prompt = newTuiPrompter(cfg)
	}

	if err := app.upgradeModuleMode(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

// upgradeModuleMode applies the one-time enablement transition (off forces
// on; auto consults the detected toolchain release) and persists the result.
// A failed persist is downgraded to a warning: the session still runs with
// the upgraded mode.
func (a *App) upgradeModuleMode(ctx context.Context) error {
	if a.Config.ModuleMode == config.ModuleModeOn {
		return nil
	}

	toolVersion := ""
	if a.Config.ModuleMode == config.ModuleModeAuto {
		v, err := a.Client.ToolVersion(ctx)
		if err != nil {
			return newServiceError(err, issue.ToolInvocationFailedId)
		}
		toolVersion = v
	}

	mode, changed := config.UpgradeModuleMode(a.Config.ModuleMode, toolVersion, a.Config.EnablingReleases)
	if !changed {
		return nil
	}
	a.Config.ModuleMode = mode
	if err := config.Save(a.Config); err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+"failed to persist module mode: "+err.Error())
	}
	return nil
}

// ensureEnabled verifies the module-mode precondition shared by every
// module-aware command: the mode flag reads on, and the toolchain confirms
// the working directory is inside a module root.
func (a *App) ensureEnabled(ctx context.Context) error {
	if a.Config.ModuleMode != config.ModuleModeOn {
		return newServiceError(config.ErrModulesDisabled, issue.ModulesDisabledId)
	}

	ok, err := gotool.InModule(ctx, a.Client)
	if err != nil {
		if errors.Is(err, gotool.ErrToolchainMissing) {
			return newServiceError(err, issue.ToolchainMissingId)
		}
		return newServiceError(err, issue.ToolInvocationFailedId)
	}
	if !ok {
		return newServiceError(
			fmt.Errorf("%w: not inside a module root", config.ErrModulesDisabled),
			issue.NoModuleContextId,
		)
	}
	return nil
}

// report prints raw toolchain output, falling back to a styled confirmation
// when the tool printed nothing.
func (a *App) report(out string) {
	out = strings.TrimSpace(out)
	if out == "" {
		fmt.Fprintln(a.stdout, SuccessStyle.Render("done"))
		return
	}
	fmt.Fprintln(a.stdout, out)
}

// spin runs a slow toolchain invocation behind the prompter's progress
// spinner and returns its output.
func (a *App) spin(ctx context.Context, title string, invoke func(context.Context) (string, error)) (string, error) {
	var (
		out     string
		callErr error
	)
	if err := a.Prompt.Spin(title, func() {
		out, callErr = invoke(ctx)
	}); err != nil {
		return "", err
	}
	return out, callErr
}

// info prints an informational (non-error) outcome.
func (a *App) info(msg string) {
	fmt.Fprintln(a.stdout, SubtitleStyle.Render(msg))
}

// failTool wraps a toolchain invocation failure with its issue card.
func failTool(err error) error {
	return newServiceError(err, issue.ToolInvocationFailedId)
}
