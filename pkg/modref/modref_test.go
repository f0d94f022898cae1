// SPDX-License-Identifier: MPL-2.0

package modref

import (
	"reflect"
	"testing"
)

func TestMatchModule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		want  ModulePath
		found bool
	}{
		{
			name:  "require line",
			line:  "\tgithub.com/lib/pq v1.2.3",
			want:  "github.com/lib/pq",
			found: true,
		},
		{
			name:  "bare domain",
			line:  "example.com v0.1.0",
			want:  "example.com",
			found: true,
		},
		{
			name:  "dotted package suffix",
			line:  "require gopkg.in/yaml.v3 v3.0.1",
			want:  "gopkg.in/yaml.v3",
			found: true,
		},
		{
			name:  "major version path segment",
			line:  "github.com/bmatcuk/doublestar/v4 v4.9.1",
			want:  "github.com/bmatcuk/doublestar/v4",
			found: true,
		},
		{
			name:  "hyphenated segments",
			line:  "go-sharp.example.org/go-offline_packager v0.0.1",
			want:  "go-sharp.example.org/go-offline_packager",
			found: true,
		},
		{
			name:  "leftmost wins",
			line:  "example.com/foo => example.org/bar",
			want:  "example.com/foo",
			found: true,
		},
		{
			name: "no module shape",
			line: "module directive without any reference",
		},
		{
			name: "empty line",
			line: "",
		},
		{
			name: "uppercase domain rejected",
			line: "Github Example v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, found := MatchModule(tt.line)
			if found != tt.found {
				t.Fatalf("MatchModule(%q) found = %v, want %v", tt.line, found, tt.found)
			}
			if got != tt.want {
				t.Errorf("MatchModule(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestMatchVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		want  Version
		found bool
	}{
		{
			name:  "plain release",
			text:  "github.com/lib/pq v1.2.3",
			want:  "v1.2.3",
			found: true,
		},
		{
			name:  "pre-release",
			text:  "v1.0.0-alpha.1",
			want:  "v1.0.0-alpha.1",
			found: true,
		},
		{
			name:  "pseudo-version",
			text:  "golang.org/x/exp v0.0.0-20251219203646-944ab1f22d93",
			want:  "v0.0.0-20251219203646-944ab1f22d93",
			found: true,
		},
		{
			name:  "incompatible marker",
			text:  "github.com/docker/docker v28.5.1+incompatible",
			want:  "v28.5.1+incompatible",
			found: true,
		},
		{
			name:  "go.sum go.mod qualifier",
			text:  "github.com/lib/pq v1.2.3/go.mod h1:abc=",
			want:  "v1.2.3/go.mod",
			found: true,
		},
		{
			name: "two-part version rejected",
			text: "v1.2 is not complete",
		},
		{
			name: "no version",
			text: "github.com/lib/pq",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, found := MatchVersion(tt.text)
			if found != tt.found {
				t.Fatalf("MatchVersion(%q) found = %v, want %v", tt.text, found, tt.found)
			}
			if got != tt.want {
				t.Errorf("MatchVersion(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// The module matcher must stop before the version column so both tokens can
// be extracted independently from the same line.
func TestMatchersAreIndependent(t *testing.T) {
	t.Parallel()

	line := "example.com/foo v0.1.0"

	mod, ok := MatchModule(line)
	if !ok || mod != "example.com/foo" {
		t.Fatalf("MatchModule(%q) = %q, %v", line, mod, ok)
	}
	ver, ok := MatchVersion(line)
	if !ok || ver != "v0.1.0" {
		t.Fatalf("MatchVersion(%q) = %q, %v", line, ver, ok)
	}
}

func TestParseList(t *testing.T) {
	t.Parallel()

	out := "github.com/lib/pq v1.2.3\nexample.com/foo v0.1.0"
	want := []Entry{
		{Path: "github.com/lib/pq", Version: "v1.2.3"},
		{Path: "example.com/foo", Version: "v0.1.0"},
	}
	if got := ParseList(out); !reflect.DeepEqual(got, want) {
		t.Errorf("ParseList() = %v, want %v", got, want)
	}
}

func TestParseList_MainModuleHasNoVersion(t *testing.T) {
	t.Parallel()

	out := "modpilot-cli\ngithub.com/spf13/cobra v1.10.2\n"
	got := ParseList(out)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Path != "modpilot-cli" || got[0].Version != "" {
		t.Errorf("main module entry = %+v", got[0])
	}
}

func TestParseList_Empty(t *testing.T) {
	t.Parallel()

	if got := ParseList("\n\n"); got != nil {
		t.Errorf("ParseList on blank output = %v, want nil", got)
	}
}

func TestParseVersions(t *testing.T) {
	t.Parallel()

	out := "github.com/lib/pq v1.0.0 v1.1.0 v1.2.3"
	want := []Version{"v1.0.0", "v1.1.0", "v1.2.3"}
	if got := ParseVersions(out); !reflect.DeepEqual(got, want) {
		t.Errorf("ParseVersions() = %v, want %v", got, want)
	}
}

func TestParseVersions_OnlyModuleName(t *testing.T) {
	t.Parallel()

	// A module with no tagged releases prints just its own path.
	if got := ParseVersions("example.com/foo\n"); got != nil {
		t.Errorf("ParseVersions() = %v, want nil", got)
	}
}

func TestUpgradeCandidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		out   string
		want  Version
		found bool
	}{
		{
			name:  "upgrade available",
			out:   "example.com/foo v0.1.0 [v0.2.0]",
			want:  "v0.2.0",
			found: true,
		},
		{
			name:  "retracted column after bracket",
			out:   "example.com/foo v0.1.0 [v0.2.0] (retracted)",
			want:  "v0.2.0",
			found: true,
		},
		{
			name: "already latest",
			out:  "example.com/foo v0.2.0",
		},
		{
			name: "bracket without version",
			out:  "example.com/foo v0.1.0 [deprecated]",
		},
		{
			name: "empty output",
			out:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, found := UpgradeCandidate(tt.out)
			if found != tt.found {
				t.Fatalf("UpgradeCandidate(%q) found = %v, want %v", tt.out, found, tt.found)
			}
			if got != tt.want {
				t.Errorf("UpgradeCandidate(%q) = %q, want %q", tt.out, got, tt.want)
			}
		})
	}
}

// Reformatting a require line must not change what the matchers extract.
func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()

	before := "require   github.com/lib/pq    v1.2.3"
	after := "require github.com/lib/pq v1.2.3" // as go mod edit -fmt would emit

	modBefore, _ := MatchModule(before)
	modAfter, _ := MatchModule(after)
	if modBefore != modAfter {
		t.Errorf("module changed across reformat: %q vs %q", modBefore, modAfter)
	}

	verBefore, _ := MatchVersion(before)
	verAfter, _ := MatchVersion(after)
	if verBefore != verAfter {
		t.Errorf("version changed across reformat: %q vs %q", verBefore, verAfter)
	}
}
