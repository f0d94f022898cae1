// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"io"
	"testing"

	"modpilot-cli/internal/config"
	"modpilot-cli/pkg/gotool"
	"modpilot-cli/pkg/modref"
)

// fakeClient is a scripted gotool.Client that records which subcommands ran.
type fakeClient struct {
	currentModule string
	listAll       []modref.Entry
	candidate     modref.Version
	candidateOK   bool
	versions      []modref.Version
	getOut        string
	err           error

	calls []string
}

var _ gotool.Client = (*fakeClient)(nil)

func (f *fakeClient) record(call string) { f.calls = append(f.calls, call) }

func (f *fakeClient) CurrentModule(context.Context) (string, error) {
	f.record("current")
	if f.currentModule == "" {
		return "example.com/project", f.err
	}
	return f.currentModule, f.err
}

func (f *fakeClient) ListAll(context.Context) ([]modref.Entry, error) {
	f.record("list")
	return f.listAll, f.err
}

func (f *fakeClient) UpgradeCandidate(_ context.Context, mod modref.ModulePath) (modref.Version, bool, error) {
	f.record("candidate " + mod.String())
	return f.candidate, f.candidateOK, f.err
}

func (f *fakeClient) Versions(_ context.Context, mod modref.ModulePath) ([]modref.Version, error) {
	f.record("versions " + mod.String())
	return f.versions, f.err
}

func (f *fakeClient) Get(_ context.Context, mod modref.ModulePath, version string) (string, error) {
	f.record("get " + mod.String() + "@" + version)
	return f.getOut, f.err
}

func (f *fakeClient) UpgradeAll(_ context.Context, patch bool, out io.Writer) error {
	if patch {
		f.record("upgrade-all patch")
	} else {
		f.record("upgrade-all")
	}
	io.WriteString(out, "go: upgraded everything\n") //nolint:errcheck // test writer
	return f.err
}

func (f *fakeClient) Tidy(context.Context) (string, error) {
	f.record("tidy")
	return "", f.err
}

func (f *fakeClient) Replace(_ context.Context, mod modref.ModulePath, path string) (string, error) {
	f.record("replace " + mod.String() + "=" + path)
	return "", f.err
}

func (f *fakeClient) Why(_ context.Context, mod modref.ModulePath) (string, error) {
	f.record("why " + mod.String())
	return "# " + mod.String(), f.err
}

func (f *fakeClient) Fmt(context.Context) (string, error) {
	f.record("fmt")
	return "", f.err
}

func (f *fakeClient) ToolVersion(context.Context) (string, error) {
	f.record("version")
	return "go version go1.25.0 linux/amd64", f.err
}

// fakePrompter answers prompts with pre-scripted values.
type fakePrompter struct {
	module     modref.ModulePath
	version    modref.Version
	confirm    bool
	path       string
	promptsRun []string
}

var _ Prompter = (*fakePrompter)(nil)

func (f *fakePrompter) ChooseModule(string, []modref.Entry) (modref.ModulePath, error) {
	f.promptsRun = append(f.promptsRun, "choose-module")
	return f.module, nil
}

func (f *fakePrompter) ChooseVersion(_ string, versions []modref.Version) (modref.Version, error) {
	f.promptsRun = append(f.promptsRun, "choose-version")
	if f.version == "" && len(versions) > 0 {
		return versions[0], nil
	}
	return f.version, nil
}

func (f *fakePrompter) Confirm(string, string) (bool, error) {
	f.promptsRun = append(f.promptsRun, "confirm")
	return f.confirm, nil
}

func (f *fakePrompter) InputPath(string, string) (string, error) {
	f.promptsRun = append(f.promptsRun, "input-path")
	return f.path, nil
}

func (f *fakePrompter) Spin(_ string, action func()) error {
	f.promptsRun = append(f.promptsRun, "spin")
	action()
	return nil
}

func TestSpin_RunsInvocationAndReturnsOutput(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	prompt := &fakePrompter{}
	app, _ := newTestApp(client, prompt)

	out, err := app.spin(context.Background(), "Tidying module requirements...", app.Client.Tidy)
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if out != "" {
		t.Fatalf("expected empty tidy output, got %q", out)
	}
	if len(prompt.promptsRun) != 1 || prompt.promptsRun[0] != "spin" {
		t.Fatalf("expected one spin prompt, got %v", prompt.promptsRun)
	}
	if len(client.calls) != 1 || client.calls[0] != "tidy" {
		t.Fatalf("expected tidy to run inside the spinner, got %v", client.calls)
	}
}

// newTestApp builds an App with module mode on and captured output.
func newTestApp(client *fakeClient, prompt *fakePrompter) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := config.DefaultConfig()
	cfg.ModuleMode = config.ModuleModeOn
	return &App{
		Config:  cfg,
		Client:  client,
		Prompt:  prompt,
		WorkDir: "/home/user",
		stdout:  out,
		stderr:  io.Discard,
	}, out
}
