// SPDX-License-Identifier: MPL-2.0

package android

import (
	"fmt"

	"github.com/ginit/ginit/internal/toolchain"

	"golang.org/x/exp/slices"
)

// Target is an Android ABI that Rust can build for.
type Target struct {
	// Triple is the Rust target name.
	Triple toolchain.Triple
	// ABI is the directory name used under jniLibs.
	ABI string
	// Arch is the NDK architecture name.
	Arch string
	// ClangTriple prefixes the NDK's clang wrapper, e.g.
	// "armv7a-linux-androideabi" + "24" + "-clang".
	ClangTriple string
}

var targets = []Target{
	{Triple: "aarch64-linux-android", ABI: "arm64-v8a", Arch: "arm64", ClangTriple: "aarch64-linux-android"},
	{Triple: "armv7-linux-androideabi", ABI: "armeabi-v7a", Arch: "arm", ClangTriple: "armv7a-linux-androideabi"},
	{Triple: "i686-linux-android", ABI: "x86", Arch: "x86", ClangTriple: "i686-linux-android"},
	{Triple: "x86_64-linux-android", ABI: "x86_64", Arch: "x86_64", ClangTriple: "x86_64-linux-android"},
}

// Targets returns every supported Android target.
func Targets() []Target {
	return slices.Clone(targets)
}

// LinkerName returns the file name of the clang wrapper that links for this
// target at the environment's API level.
func (t Target) LinkerName(env *Env) string {
	return fmt.Sprintf("%s%d-clang%s", t.ClangTriple, env.MinSDKVersion, env.Host.ExecutableSuffix())
}

// GenerateOverride returns the Cargo settings for building this target with
// the NDK in env.
func (t Target) GenerateOverride(env *Env) toolchain.Override {
	return toolchain.Override{
		Archiver: env.BinPath("llvm-ar"),
		Linker:   env.BinPath(t.LinkerName(env)),
		RustFlags: []string{
			"-C", "link-arg=-landroid",
			"-C", "link-arg=-llog",
		},
	}
}
