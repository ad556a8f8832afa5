// SPDX-License-Identifier: MPL-2.0

// Package config loads the per-project ginit configuration using Viper with
// CUE as the file format.
//
// The configuration lives in ginit.cue at the project root. It is validated
// against an embedded CUE schema (config_schema.cue) and layered over
// built-in defaults; GINIT_* environment variables override both. A project
// without ginit.cue runs on defaults.
package config
