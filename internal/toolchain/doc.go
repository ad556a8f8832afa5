// SPDX-License-Identifier: MPL-2.0

// Package toolchain assembles per-target Cargo toolchain overrides.
//
// Discovery collaborators (Android, iOS) implement Source and report the
// override each of their target triples needs. Builder merges every source
// into a Map, adds the fixed desktop hot-reload entry, and drops overrides
// that carry no settings. A Map always iterates in lexicographic triple
// order, so anything rendered from it is reproducible byte for byte.
package toolchain
