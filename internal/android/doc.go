// SPDX-License-Identifier: MPL-2.0

// Package android discovers the Android NDK on the host and derives the Cargo
// archiver, linker and flags for every supported Android target.
//
// The NDK location comes from an explicit path or, failing that, from
// ANDROID_NDK_HOME, NDK_HOME or ANDROID_NDK_ROOT (checked in that order).
// Linkers are the API-level-specific clang wrappers the NDK ships under
// toolchains/llvm/prebuilt/<host-tag>/bin.
package android
