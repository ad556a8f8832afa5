// SPDX-License-Identifier: MPL-2.0

// Package project locates the project root and resolves project-relative
// directories to absolute paths. The root is the nearest directory, at or
// above the working directory, that contains a ginit.cue file.
package project
