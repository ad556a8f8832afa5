// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE documents against an embedded schema.
//
// Decoding follows three steps:
//
//  1. Compile the embedded schema
//  2. Compile the user data and unify it with a schema definition
//  3. Validate and decode to a Go map
//
// Errors carry the file name and a JSON-style path to the offending field,
// e.g. "ginit.cue: android.min_sdk_version: invalid value 12".
package cueutil
