// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// FakeNDK lays out the directories of an NDK installation at root with a
// prebuilt LLVM toolchain for hostTag (e.g. "linux-x86_64") and returns the
// toolchain bin directory.
func FakeNDK(t testing.TB, fs afero.Fs, root, hostTag string) string {
	t.Helper()
	bin := filepath.Join(root, "toolchains", "llvm", "prebuilt", hostTag, "bin")
	MustMkdirAll(t, fs, bin)
	return bin
}

// LookupEnv returns an os.LookupEnv replacement backed by vars.
func LookupEnv(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}
