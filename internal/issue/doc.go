// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// suggestions for fixing it. The Issue catalog adds Markdown guidance for
// well-known failures, rendered for the terminal with glamour.
package issue
