// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGet_KnownIds(t *testing.T) {
	t.Parallel()

	ids := []Id{
		ToolchainMissingId,
		ModulesDisabledId,
		NoModuleContextId,
		ToolInvocationFailedId,
		ConfigLoadFailedId,
		ManifestNotFoundId,
	}

	for _, id := range ids {
		i := Get(id)
		if i == nil {
			t.Fatalf("no issue registered for id %d", id)
		}
		if i.Id() != id {
			t.Errorf("issue registered under wrong id: got %d, want %d", i.Id(), id)
		}
		if strings.TrimSpace(string(i.MarkdownMsg())) == "" {
			t.Errorf("issue %d has empty message", id)
		}
	}
}

func TestGet_UnknownId(t *testing.T) {
	t.Parallel()

	if i := Get(Id(9999)); i != nil {
		t.Errorf("expected nil for unknown id, got %v", i)
	}
}

func TestValues_CoversRegistry(t *testing.T) {
	t.Parallel()

	if got := len(Values()); got != len(issues) {
		t.Errorf("Values() returned %d issues, registry has %d", got, len(issues))
	}
}

// Not parallel: swaps the package-level render hook.
func TestRender_IncludesDocLinks(t *testing.T) {
	orig := render
	t.Cleanup(func() { render = orig })
	render = func(in, _ string) (string, error) { return in, nil }

	out, err := Get(ToolchainMissingId).Render("dark")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "https://go.dev/doc/install") {
		t.Errorf("rendered issue missing doc link:\n%s", out)
	}
}
