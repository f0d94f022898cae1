// SPDX-License-Identifier: MPL-2.0

// Package gotool wraps the Go toolchain executable behind a Client interface
// with one method per subcommand. All text-output parsing assumptions live
// here (and in pkg/modref), so swapping in a structured query mode later
// touches nothing above this seam.
package gotool

import (
	"context"
	"io"
	"os/exec"
	"slices"
	"strings"

	"modpilot-cli/pkg/modref"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/shell"
)

// NoModuleSentinel is what `go list -m` prints when the working directory is
// not inside a module root.
const NoModuleSentinel = "command-line-arguments"

// Client is the toolchain seam consumed by the CLI layer. Every method maps
// to exactly one subcommand invocation; none retries or caches.
type Client interface {
	// CurrentModule returns the trimmed `go list -m` output.
	CurrentModule(ctx context.Context) (string, error)
	// ListAll returns the resolved module graph from `go list -m all`.
	ListAll(ctx context.Context) ([]modref.Entry, error)
	// UpgradeCandidate reports the newest available version of mod from
	// `go list -m -u`, or false when the module is already at the latest.
	UpgradeCandidate(ctx context.Context, mod modref.ModulePath) (modref.Version, bool, error)
	// Versions lists the tagged releases of mod from `go list -m -versions`.
	Versions(ctx context.Context, mod modref.ModulePath) ([]modref.Version, error)
	// Get runs `go get mod@version`. Version may be a concrete version,
	// "latest", or "main".
	Get(ctx context.Context, mod modref.ModulePath, version string) (string, error)
	// UpgradeAll runs `go get -u[=patch] -m all`, streaming combined output
	// to out as it is produced rather than capturing it.
	UpgradeAll(ctx context.Context, patch bool, out io.Writer) error
	// Tidy runs `go mod tidy`.
	Tidy(ctx context.Context) (string, error)
	// Replace runs `go mod edit -replace mod=path`.
	Replace(ctx context.Context, mod modref.ModulePath, path string) (string, error)
	// Why runs `go mod why mod`.
	Why(ctx context.Context, mod modref.ModulePath) (string, error)
	// Fmt runs `go mod edit -fmt`.
	Fmt(ctx context.Context) (string, error)
	// ToolVersion returns the trimmed `go version` output.
	ToolVersion(ctx context.Context) (string, error)
}

// Tool is the production Client. It shells out synchronously; the only
// cancellation path is the context passed to each call.
type Tool struct {
	argv   []string
	dir    string
	logger *log.Logger
}

var _ Client = (*Tool)(nil)

// Option configures a Tool.
type Option func(*Tool)

// WithDir sets the working directory for every invocation. Empty means the
// process working directory.
func WithDir(dir string) Option {
	return func(t *Tool) { t.dir = dir }
}

// WithLogger sets the logger used for verbose invocation tracing.
func WithLogger(logger *log.Logger) Option {
	return func(t *Tool) { t.logger = logger }
}

// New builds a Tool from a command string ("go", "go1.25", or a wrapper such
// as "env GOFLAGS=-mod=mod go"). The command is split into argv with shell
// field rules. The executable must resolve via PATH up front; otherwise
// every module feature of the session is unavailable and New fails with
// ErrToolchainMissing.
func New(command string, opts ...Option) (*Tool, error) {
	argv, err := shell.Fields(command, nil)
	if err != nil || len(argv) == 0 {
		return nil, &MissingError{Command: command, Err: err}
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return nil, &MissingError{Command: argv[0], Err: err}
	}

	t := &Tool{argv: argv, logger: log.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// run executes one subcommand and returns its combined output. Non-zero exit
// surfaces the raw output verbatim inside an InvocationError; the underlying
// tool owns the semantics of its own failures.
func (t *Tool) run(ctx context.Context, args ...string) (string, error) {
	full := slices.Concat(t.argv[1:], args)
	t.logger.Debug("invoking toolchain", "cmd", t.argv[0], "args", strings.Join(full, " "))

	cmd := exec.CommandContext(ctx, t.argv[0], full...)
	cmd.Dir = t.dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", &InvocationError{Args: args, Output: string(out), Err: err}
	}
	return string(out), nil
}

// CurrentModule implements Client.
func (t *Tool) CurrentModule(ctx context.Context) (string, error) {
	out, err := t.run(ctx, "list", "-m")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ListAll implements Client.
func (t *Tool) ListAll(ctx context.Context) ([]modref.Entry, error) {
	out, err := t.run(ctx, "list", "-m", "all")
	if err != nil {
		return nil, err
	}
	return modref.ParseList(out), nil
}

// UpgradeCandidate implements Client.
func (t *Tool) UpgradeCandidate(ctx context.Context, mod modref.ModulePath) (modref.Version, bool, error) {
	out, err := t.run(ctx, "list", "-m", "-u", mod.String())
	if err != nil {
		return "", false, err
	}
	v, ok := modref.UpgradeCandidate(out)
	return v, ok, nil
}

// Versions implements Client.
func (t *Tool) Versions(ctx context.Context, mod modref.ModulePath) ([]modref.Version, error) {
	out, err := t.run(ctx, "list", "-m", "-versions", mod.String())
	if err != nil {
		return nil, err
	}
	return modref.ParseVersions(out), nil
}

// Get implements Client.
func (t *Tool) Get(ctx context.Context, mod modref.ModulePath, version string) (string, error) {
	return t.run(ctx, "get", mod.String()+"@"+version)
}

// UpgradeAll implements Client. Output is streamed so the user sees progress
// during a potentially slow full-graph upgrade instead of a frozen prompt.
func (t *Tool) UpgradeAll(ctx context.Context, patch bool, out io.Writer) error {
	flag := "-u"
	if patch {
		flag = "-u=patch"
	}
	args := []string{"get", flag, "-m", "all"}
	full := slices.Concat(t.argv[1:], args)
	t.logger.Debug("invoking toolchain", "cmd", t.argv[0], "args", strings.Join(full, " "))

	cmd := exec.CommandContext(ctx, t.argv[0], full...)
	cmd.Dir = t.dir
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Run(); err != nil {
		return &InvocationError{Args: args, Err: err}
	}
	return nil
}

// Tidy implements Client.
func (t *Tool) Tidy(ctx context.Context) (string, error) {
	return t.run(ctx, "mod", "tidy")
}

// Replace implements Client.
func (t *Tool) Replace(ctx context.Context, mod modref.ModulePath, path string) (string, error) {
	return t.run(ctx, "mod", "edit", "-replace", mod.String()+"="+path)
}

// Why implements Client.
func (t *Tool) Why(ctx context.Context, mod modref.ModulePath) (string, error) {
	return t.run(ctx, "mod", "why", mod.String())
}

// Fmt implements Client.
func (t *Tool) Fmt(ctx context.Context) (string, error) {
	return t.run(ctx, "mod", "edit", "-fmt")
}

// ToolVersion implements Client.
func (t *Tool) ToolVersion(ctx context.Context) (string, error) {
	out, err := t.run(ctx, "version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// InModule reports whether client is running inside a recognized module
// root. `go list -m` prints NoModuleSentinel outside one.
func InModule(ctx context.Context, client Client) (bool, error) {
	cur, err := client.CurrentModule(ctx)
	if err != nil {
		return false, err
	}
	return cur != "" && cur != NoModuleSentinel, nil
}
