// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"slices"
	"strings"
	"testing"

	"modpilot-cli/pkg/modref"
)

func TestGetVersion_NoVersionsAvailable(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	prompt := &fakePrompter{}
	app, out := newTestApp(client, prompt)

	if err := app.getVersion(context.Background(), []string{"example.com/foo"}); err != nil {
		t.Fatalf("getVersion: %v", err)
	}

	if !strings.Contains(out.String(), "no other versions available") {
		t.Errorf("missing unavailability report: %q", out.String())
	}
	for _, call := range client.calls {
		if strings.HasPrefix(call, "get ") {
			t.Errorf("empty version list must not invoke get, calls = %v", client.calls)
		}
	}
	if slices.Contains(prompt.promptsRun, "choose-version") {
		t.Error("no version picker expected for an empty list")
	}
}

func TestGetVersion_AppliesChosenVersion(t *testing.T) {
	t.Parallel()

	client := &fakeClient{versions: []modref.Version{"v1.0.0", "v1.1.0", "v1.2.3"}}
	prompt := &fakePrompter{version: "v1.1.0"}
	app, _ := newTestApp(client, prompt)

	if err := app.getVersion(context.Background(), []string{"example.com/foo"}); err != nil {
		t.Fatalf("getVersion: %v", err)
	}

	if !slices.Contains(client.calls, "get example.com/foo@v1.1.0") {
		t.Errorf("expected get with chosen version, calls = %v", client.calls)
	}
}
