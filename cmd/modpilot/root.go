// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for modpilot.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// currentLine is manifest text supplied by the host to resolve the
	// target module from, in place of an explicit argument
	currentLine string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "modpilot",
		Short: "A companion for Go module manifests",
		Long: TitleStyle.Render("modpilot") + SubtitleStyle.Render(" - A companion for Go module manifests") + `

modpilot drives the Go toolchain's module commands interactively: it
resolves which module you mean (from an argument, a manifest line, or a
picker over 'go list -m all') and delegates every manifest mutation to the
toolchain itself.

` + SubtitleStyle.Render("Examples:") + `
  modpilot list                     Show all resolved modules
  modpilot upgrade github.com/x/y   Upgrade one module after confirmation
  modpilot upgrade --all --patch    Patch-upgrade everything, streaming output
  modpilot get --line "github.com/lib/pq v1.2.3"
                                    Pick a version for the module on a line
  modpilot tidy                     Run 'go mod tidy'
  modpilot watch                    Reformat go.mod on every save`,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/modpilot/config.toml)")
	rootCmd.PersistentFlags().StringVar(&currentLine, "line", "", "manifest line to resolve the target module from")

	// Add subcommands
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newUpgradeCommand())
	rootCmd.AddCommand(newGetCommand())
	rootCmd.AddCommand(newTidyCommand())
	rootCmd.AddCommand(newReplaceCommand())
	rootCmd.AddCommand(newWhyCommand())
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newWatchCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			renderServiceError(os.Stderr, svcErr)
		}
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// newLogger builds the stderr logger honoring the --verbose flag.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
