// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	NDKNotFoundId Id = iota + 1
	HostNotSupportedId
	ProjectConfigInvalidId
	UnknownTargetId
	CargoConfigWriteFailedId
	CargoConfigMissingId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation for this issue type
	extLinks []HttpLink  // external links that might be useful for the user
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

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue as terminal Markdown using the given glamour
// style ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	ndkNotFoundIssue = &Issue{
		id: NDKNotFoundId,
		mdMsg: `
# Android NDK not found!

Android targets link through the NDK's LLVM toolchain, and no usable NDK
installation was found.

## Search order
1. ` + "`android.ndk_path`" + ` in ginit.cue (or ` + "`GINIT_ANDROID_NDK_PATH`" + `)
2. ` + "`ANDROID_NDK_HOME`" + `
3. ` + "`NDK_HOME`" + `
4. ` + "`ANDROID_NDK_ROOT`" + `

## Things you can try
- Install the NDK with the Android SDK manager:
~~~
$ sdkmanager "ndk;26.1.10909125"
~~~
- Point ginit at it:
~~~
$ export ANDROID_NDK_HOME=$HOME/Android/Sdk/ndk/26.1.10909125
~~~
- Or disable Android in ginit.cue if you only build for iOS:
~~~cue
android: enabled: false
~~~`,
		extLinks: []HttpLink{"https://developer.android.com/ndk/downloads"},
	}

	hostNotSupportedIssue = &Issue{
		id: HostNotSupportedId,
		mdMsg: `
# Host not supported!

The Android NDK ships prebuilt toolchains for x86_64 Linux, x86_64 Windows
and macOS only.

## Things you can try
- Run ginit on a supported host
- Disable Android in ginit.cue:
~~~cue
android: enabled: false
~~~`,
	}

	projectConfigInvalidIssue = &Issue{
		id: ProjectConfigInvalidId,
		mdMsg: `
# Invalid project configuration!

ginit.cue did not match the expected schema.

## Common issues
- Invalid CUE syntax (missing quotes, braces, etc.)
- Unknown field names
- ` + "`android.min_sdk_version`" + ` outside 16..40

## Example
~~~cue
app: name: "my-app"
android: {
	min_sdk_version: 24
	targets: ["aarch64-linux-android", "x86_64-linux-android"]
}
ios: enabled: true
~~~`,
	}

	unknownTargetIssue = &Issue{
		id: UnknownTargetId,
		mdMsg: `
# Unknown target!

A target listed in ginit.cue is not supported on that platform.

## Things you can try
- List the supported targets:
~~~
$ ginit cargo targets
~~~
- Remove the ` + "`targets`" + ` list to build for every supported target`,
	}

	cargoConfigWriteFailedIssue = &Issue{
		id: CargoConfigWriteFailedId,
		mdMsg: `
# Failed to write .cargo/config!

The toolchain configuration could not be written.

## Things you can try
- Check that the project directory is writable
- Make sure ` + "`.cargo`" + ` is a directory, not a file
- Run with ` + "`--verbose`" + ` to see the full error chain`,
	}

	cargoConfigMissingIssue = &Issue{
		id: CargoConfigMissingId,
		mdMsg: `
# No .cargo/config found!

The project has no generated toolchain configuration yet.

## Things you can try
- Generate it:
~~~
$ ginit cargo generate
~~~`,
		docLinks: []HttpLink{"https://doc.rust-lang.org/cargo/reference/config.html"},
	}

	issues = map[Id]*Issue{
		ndkNotFoundIssue.Id():            ndkNotFoundIssue,
		hostNotSupportedIssue.Id():       hostNotSupportedIssue,
		projectConfigInvalidIssue.Id():   projectConfigInvalidIssue,
		unknownTargetIssue.Id():          unknownTargetIssue,
		cargoConfigWriteFailedIssue.Id(): cargoConfigWriteFailedIssue,
		cargoConfigMissingIssue.Id():     cargoConfigMissingIssue,
	}
)

// Values returns every catalogued issue ordered by Id.
func Values() []*Issue {
	ids := maps.Keys(issues)
	slices.Sort(ids)

	values := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		values = append(values, issues[id])
	}
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
