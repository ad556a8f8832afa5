// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for ginit.
//
// The App type is the composition root: it owns the filesystem, host
// description and configuration provider, and every Cobra handler builds
// its pipeline from it. Tests substitute an in-memory filesystem and fake
// environment through Dependencies.
package cmd
