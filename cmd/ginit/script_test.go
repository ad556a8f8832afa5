// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain lets testscript run the ginit binary in-process as "ginit".
func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"ginit": Execute,
	})
}

// TestScripts runs the CLI scenarios under testdata/script.
func TestScripts(t *testing.T) {
	t.Parallel()

	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			// Keep host NDK installations out of the scripts.
			for _, name := range []string{"ANDROID_NDK_HOME", "NDK_HOME", "ANDROID_NDK_ROOT", "GINIT_ANDROID_NDK_PATH"} {
				env.Setenv(name, "")
			}
			return nil
		},
	})
}
