// SPDX-License-Identifier: MPL-2.0

// Package testutil holds Must* helpers that fail the test on setup errors,
// plus a fake Android NDK layout.
//
// Filesystem helpers take an afero.Fs so the same fixtures work on an
// in-memory filesystem and on t.TempDir().
package testutil
