// SPDX-License-Identifier: MPL-2.0

// Package modref recognizes module-path and version tokens embedded in
// manifest (go.mod), lock (go.sum), and `go list` output text.
//
// The matchers are deliberately shallow: they identify the shape of a
// reference, they do not validate it against the module path grammar the
// toolchain enforces. Leftmost match wins; no further disambiguation is
// attempted.
package modref

import (
	"regexp"
	"strings"
)

type (
	// ModulePath is the textual identifier of a module (e.g.,
	// "github.com/lib/pq" or "gopkg.in/yaml.v3"). It is opaque to this
	// package beyond the shape check performed by MatchModule.
	ModulePath string

	// Version is a semantic version token, optionally carrying a
	// pre-release/pseudo-version suffix, a "+incompatible" marker, or a
	// "/go.mod" qualifier as printed in go.sum lines.
	Version string

	// Entry pairs a module path with its resolved version. The main module
	// line of `go list -m all` output has an empty Version.
	Entry struct {
		Path    ModulePath
		Version Version
	}
)

var (
	// modulePattern matches one or more lowercase dot/hyphen-separated
	// domain-like segments, followed by optional slash-separated path
	// segments. Dotted suffixes (gopkg.in/yaml.v3) and /vN major-version
	// segments fall out of the path-segment class.
	modulePattern = regexp.MustCompile(`[a-z0-9]+(?:[.-][a-z0-9]+)+(?:/[A-Za-z0-9._~-]+)*`)

	// versionPattern matches vX.Y.Z with an optional pre-release or
	// pseudo-version suffix (lowercase hex/digit groups), an optional
	// "+incompatible" marker, and an optional "/go.mod" qualifier.
	versionPattern = regexp.MustCompile(`v[0-9]+\.[0-9]+\.[0-9]+(?:-[0-9a-z]+(?:[.-][0-9a-z]+)*)?(?:\+incompatible)?(?:/go\.mod)?`)
)

// MatchModule returns the leftmost module-path-shaped substring of line.
func MatchModule(line string) (ModulePath, bool) {
	m := modulePattern.FindString(line)
	if m == "" {
		return "", false
	}
	return ModulePath(m), true
}

// MatchVersion returns the leftmost version-shaped substring of text.
func MatchVersion(text string) (Version, bool) {
	v := versionPattern.FindString(text)
	if v == "" {
		return "", false
	}
	return Version(v), true
}

// String returns the string representation of the ModulePath.
func (p ModulePath) String() string { return string(p) }

// String returns the string representation of the Version.
func (v Version) String() string { return string(v) }

// ParseList parses `go list -m all` output into an ordered list of entries.
// Each non-empty line contributes one entry: the first field is the module
// path, the second (when present) its version. Replacement arrows and any
// trailing columns are ignored.
func ParseList(out string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		e := Entry{Path: ModulePath(fields[0])}
		if len(fields) > 1 {
			e.Version = Version(fields[1])
		}
		entries = append(entries, e)
	}
	return entries
}

// ParseVersions parses `go list -m -versions <mod>` output. The first token
// is the module path itself and is discarded; the rest are returned in the
// order the toolchain printed them.
func ParseVersions(out string) []Version {
	fields := strings.Fields(out)
	if len(fields) < 2 {
		return nil
	}
	versions := make([]Version, 0, len(fields)-1)
	for _, f := range fields[1:] {
		versions = append(versions, Version(f))
	}
	return versions
}

// UpgradeCandidate extracts the version inside the first bracketed segment
// of `go list -m -u <mod>` output ("example.com/foo v0.1.0 [v0.2.0]").
// It returns false when the output carries no bracketed upgrade.
func UpgradeCandidate(out string) (Version, bool) {
	open := strings.Index(out, "[")
	if open < 0 {
		return "", false
	}
	rest := out[open+1:]
	if close := strings.Index(rest, "]"); close >= 0 {
		rest = rest[:close]
	}
	return MatchVersion(rest)
}
