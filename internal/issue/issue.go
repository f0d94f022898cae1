// SPDX-License-Identifier: EPL-2.0

// Package issue holds the user-facing diagnostic cards for every known
// failure mode, rendered as markdown via glamour.
package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ToolchainMissingId Id = iota + 1
	ModulesDisabledId
	NoModuleContextId
	ToolInvocationFailedId
	ConfigLoadFailedId
	ManifestNotFoundId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // pointers to toolchain documentation
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- " + string(link) + "\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	toolchainMissingIssue = &Issue{
		id: ToolchainMissingId,
		mdMsg: `
# Go toolchain not found!

Every modpilot feature delegates to the Go toolchain, and its executable
could not be located on your PATH.

## Things you can try:
- Install Go from https://go.dev/dl/ and make sure ` + "`go`" + ` is on your PATH:
~~~
$ go version
~~~

- Or point modpilot at a differently-named toolchain in your config file:
~~~toml
tool_command = "go1.25"
~~~`,
		docLinks: []HttpLink{"https://go.dev/doc/install"},
	}

	modulesDisabledIssue = &Issue{
		id: ModulesDisabledId,
		mdMsg: `
# Module support is disabled!

Your module_mode setting is not "on", so module-aware commands are
unavailable.

## Things you can try:
- Enable module mode explicitly:
~~~toml
module_mode = "on"
~~~

- Or keep "auto" and add your toolchain release to the enabling list:
~~~toml
enabling_releases = ["go1.11", "go1.25"]
~~~`,
		docLinks: []HttpLink{"https://go.dev/ref/mod#mod-commands"},
	}

	noModuleContextIssue = &Issue{
		id: NoModuleContextId,
		mdMsg: `
# Not inside a module!

The working directory is not inside a recognized module root, so the
toolchain has no manifest to operate on.

## Things you can try:
- Change into a directory containing a go.mod file
- Or initialize a new module:
~~~
$ go mod init example.com/project
~~~`,
		docLinks: []HttpLink{"https://go.dev/ref/mod#go-mod-init"},
	}

	toolInvocationFailedIssue = &Issue{
		id: ToolInvocationFailedId,
		mdMsg: `
# Toolchain command failed!

The Go toolchain exited with an error. Its own message (shown above) is the
authoritative diagnosis; modpilot passes it through verbatim.

## Common causes:
- Network failures while fetching modules
- A module or version that does not exist
- A malformed go.mod directive`,
		docLinks: []HttpLink{"https://go.dev/ref/mod#errors"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your modpilot config file exists but could not be read or parsed.

## Things you can try:
- Check the TOML syntax of the file reported above
- Remove the file to fall back to defaults
- Run with verbose mode for more details:
~~~
$ modpilot --verbose list
~~~`,
	}

	manifestNotFoundIssue = &Issue{
		id: ManifestNotFoundId,
		mdMsg: `
# No manifest to watch!

modpilot watch needs a go.mod file in the working directory (or one passed
explicitly) to reformat on save.

## Things you can try:
~~~
$ modpilot watch ./go.mod
~~~`,
	}

	issues = map[Id]*Issue{
		toolchainMissingIssue.Id():     toolchainMissingIssue,
		modulesDisabledIssue.Id():      modulesDisabledIssue,
		noModuleContextIssue.Id():      noModuleContextIssue,
		toolInvocationFailedIssue.Id(): toolInvocationFailedIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		manifestNotFoundIssue.Id():     manifestNotFoundIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
